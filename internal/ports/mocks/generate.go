//go:generate mockgen -source=../order_gateway.go    -destination=./mock_order_gateway.go    -package=mocks
//go:generate mockgen -source=../request_cache.go    -destination=./mock_request_cache.go    -package=mocks
//go:generate mockgen -source=../invalidator.go      -destination=./mock_invalidator.go      -package=mocks
//go:generate mockgen -source=../validator.go        -destination=./mock_validator.go        -package=mocks
//go:generate mockgen -source=../message_consumer.go -destination=./mock_message_consumer.go -package=mocks
//go:generate mockgen -source=../console_service.go  -destination=./mock_console_service.go  -package=mocks

package mocks
