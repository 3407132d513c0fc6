package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "finbook-cli",
		Short: "Finbook CLI tool",
		Long:  `A command line interface for interacting with the Finbook accounting API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the Finbook API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(accountCmd())
	rootCmd.AddCommand(voucherCmd())
	rootCmd.AddCommand(balanceSheetCmd())
	rootCmd.AddCommand(incomeStatementCmd())
	rootCmd.AddCommand(ledgerCmd())
	rootCmd.AddCommand(periodCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func accountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Chart of accounts operations",
	}

	var accountType, status string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			if accountType != "" {
				query.Set("type", accountType)
			}
			if status != "" {
				query.Set("status", status)
			}
			return apiGet("/api/v1/accounts?" + query.Encode())
		},
	}
	listCmd.Flags().StringVar(&accountType, "type", "", "Filter by account type")
	listCmd.Flags().StringVar(&status, "status", "", "Filter by account status")

	getCmd := &cobra.Command{
		Use:   "get <code>",
		Short: "Show a single account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return apiGet("/api/v1/accounts/" + args[0])
		},
	}

	cmd.AddCommand(listCmd, getCmd)
	return cmd
}

func voucherCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "voucher",
		Short: "Voucher operations",
	}

	var period, status string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List vouchers",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			if period != "" {
				query.Set("period", period)
			}
			if status != "" {
				query.Set("status", status)
			}
			return apiGet("/api/v1/vouchers?" + query.Encode())
		},
	}
	listCmd.Flags().StringVar(&period, "period", "", "Filter by period (YYYYMM)")
	listCmd.Flags().StringVar(&status, "status", "", "Filter by voucher status")

	getCmd := &cobra.Command{
		Use:   "get <number>",
		Short: "Show a single voucher with its entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return apiGet("/api/v1/vouchers/" + args[0])
		},
	}

	submitCmd := &cobra.Command{
		Use:   "submit <number>",
		Short: "Submit a draft voucher",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return apiPost("/api/v1/vouchers/"+args[0]+"/submit", nil)
		},
	}

	var auditedBy string
	auditCmd := &cobra.Command{
		Use:   "audit <number>",
		Short: "Audit a submitted voucher",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return apiPost("/api/v1/vouchers/"+args[0]+"/audit", map[string]string{
				"audited_by": auditedBy,
			})
		},
	}
	auditCmd.Flags().StringVar(&auditedBy, "by", "", "Name of the auditor")
	_ = auditCmd.MarkFlagRequired("by")

	postCmd := &cobra.Command{
		Use:   "post <number>",
		Short: "Post an audited voucher to the books",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return apiPost("/api/v1/vouchers/"+args[0]+"/post", nil)
		},
	}

	cmd.AddCommand(listCmd, getCmd, submitCmd, auditCmd, postCmd)
	return cmd
}

func balanceSheetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance-sheet",
		Short: "Balance sheet operations",
	}

	var generatedBy string
	generateCmd := &cobra.Command{
		Use:   "generate <period>",
		Short: "Generate the balance sheet for a period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return apiPost("/api/v1/balance-sheets/generate", map[string]string{
				"period":       args[0],
				"generated_by": generatedBy,
			})
		},
	}
	generateCmd.Flags().StringVar(&generatedBy, "by", "", "Name of the operator")

	getCmd := &cobra.Command{
		Use:   "get <period>",
		Short: "Show the balance sheet for a period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return apiGet("/api/v1/balance-sheets/" + args[0])
		},
	}

	finalizeCmd := &cobra.Command{
		Use:   "finalize <period>",
		Short: "Finalize the balance sheet for a period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return apiPost("/api/v1/balance-sheets/"+args[0]+"/finalize", nil)
		},
	}

	cmd.AddCommand(generateCmd, getCmd, finalizeCmd)
	return cmd
}

func incomeStatementCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "income-statement",
		Short: "Income statement operations",
	}

	var generatedBy string
	generateCmd := &cobra.Command{
		Use:   "generate <period>",
		Short: "Generate the income statement for a period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return apiPost("/api/v1/income-statements/generate", map[string]string{
				"period":       args[0],
				"generated_by": generatedBy,
			})
		},
	}
	generateCmd.Flags().StringVar(&generatedBy, "by", "", "Name of the operator")

	getCmd := &cobra.Command{
		Use:   "get <period>",
		Short: "Show the income statement for a period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return apiGet("/api/v1/income-statements/" + args[0])
		},
	}

	cmd.AddCommand(generateCmd, getCmd)
	return cmd
}

func ledgerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "General ledger operations",
	}

	generateCmd := &cobra.Command{
		Use:   "generate <period>",
		Short: "Rebuild the general ledger for a period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return apiPost("/api/v1/ledger/"+args[0]+"/generate", nil)
		},
	}

	getCmd := &cobra.Command{
		Use:   "get <period>",
		Short: "Show the general ledger for a period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return apiGet("/api/v1/ledger/" + args[0])
		},
	}

	cmd.AddCommand(generateCmd, getCmd)
	return cmd
}

func periodCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "period",
		Short: "Reporting period operations",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List reporting periods",
		RunE: func(cmd *cobra.Command, args []string) error {
			return apiGet("/api/v1/periods")
		},
	}

	var closedBy string
	closeCmd := &cobra.Command{
		Use:   "close <code>",
		Short: "Close a reporting period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return apiPost("/api/v1/periods/"+args[0]+"/close", map[string]string{
				"closed_by": closedBy,
			})
		},
	}
	closeCmd.Flags().StringVar(&closedBy, "by", "", "Name of the operator")
	_ = closeCmd.MarkFlagRequired("by")

	cmd.AddCommand(listCmd, closeCmd)
	return cmd
}

func apiGet(path string) error {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func apiPost(path string, payload any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", body)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, truncate(string(data), 200))
	}

	if len(data) == 0 {
		fmt.Println("OK")
		return nil
	}

	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		fmt.Println(string(data))
		return nil
	}

	printJSON(parsed)
	return nil
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to render response: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
