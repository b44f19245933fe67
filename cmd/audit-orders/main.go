package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Akimtsev/ops_console/pkg/validate"
)

// CLI-приложение для аудита выгрузок заказов.
func main() {
	inputPath := flag.String("in", "", "path to input (.json or .jsonl). If empty, reads from stdin.")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	flag.Parse()

	ctx := context.Background()
	auditor := validate.NewOrderAuditor()

	format := validate.InputFormat(*formatStr)

	// stdin вариант: считаем, что jsonl
	if *inputPath == "" {
		if format == validate.FormatAuto {
			format = validate.FormatJSONL
		}
		summary, err := validate.AuditFile(ctx, auditor, "/dev/stdin", format, os.Stdout)
		if err != nil {
			fmt.Fprintf(os.Stderr, "audit: %v (%s)\n", err, summary)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "audit ok (%s)\n", summary)
		return
	}

	summary, err := validate.AuditFile(ctx, auditor, *inputPath, format, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "audit: %v (%s)\n", err, summary)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "audit ok (%s)\n", summary)
}
