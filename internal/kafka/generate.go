//go:generate mockgen -source=consumer.go -destination=./mocks/mock_consumer_deps.go -package=mocks

package kafka
