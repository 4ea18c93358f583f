package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ledgerlens/ledgerlens/internal/ledger/explain"
	"github.com/ledgerlens/ledgerlens/internal/ledger/fields"
	"github.com/ledgerlens/ledgerlens/internal/ledger/mutations"
	"github.com/ledgerlens/ledgerlens/internal/ledger/txn"
)

var explainAccount string

var explainCmd = &cobra.Command{
	Use:   "explain [file...]",
	Short: "Explain transaction JSON files in human terms",
	Long: `Explain reads one or more transaction JSON files and prints each
transaction's event label, narrative description, participants, and monetary
effect. Metadata is read from the payload's "meta" or "metaData" key when
present.

The --account flag sets the observer: labels and balance movements are
rendered from that account's point of view. Without it, each transaction is
explained from its own sender's side.

Example:
    ledgerlens explain tx.json
    ledgerlens explain --account rEoP... tx1.json tx2.json
    ledgerlens explain --network xahau tx.json`,
	Args: cobra.MinimumNArgs(1),
	Run:  runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)

	explainCmd.Flags().StringVarP(&explainAccount, "account", "a", "", "observer account address")
}

type explainReport struct {
	path        string
	label       string
	description string
	sent        []string
	received    []string
	err         error
}

func runExplain(cmd *cobra.Command, args []string) {
	opts, err := decodeOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	reports := make([]explainReport, len(args))

	var group errgroup.Group
	for i, path := range args {
		i, path := i, path
		group.Go(func() error {
			reports[i] = explainFile(path, explainAccount, opts)
			return nil
		})
	}
	group.Wait()

	failed := false
	for i, report := range reports {
		if i > 0 {
			fmt.Println()
		}
		printReport(report)
		if report.err != nil {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func explainFile(path, account string, opts fields.Options) explainReport {
	report := explainReport{path: path}

	transaction, err := loadTransaction(path, opts)
	if err != nil {
		report.err = err
		return report
	}

	item := mutations.Compose(transaction)
	observer := account
	if observer == "" {
		observer = transaction.Account()
	}
	explainer := explain.New(item, observer)

	if report.label, err = explainer.EventsLabel(); err != nil {
		report.err = err
		return report
	}
	if report.description, err = explainer.Description(); err != nil {
		report.err = err
		return report
	}

	details, err := explainer.MonetaryDetails()
	if err != nil {
		report.err = err
		return report
	}
	for _, change := range details.Mutate.Sent {
		report.sent = append(report.sent, formatChange(change.Value, change.Currency, change.Issuer))
	}
	for _, change := range details.Mutate.Received {
		report.received = append(report.received, formatChange(change.Value, change.Currency, change.Issuer))
	}

	return report
}

func printReport(report explainReport) {
	fmt.Printf("=== %s ===\n", report.path)
	if report.err != nil {
		fmt.Printf("ERROR: %v\n", report.err)
		return
	}
	fmt.Printf("Event:       %s\n", report.label)
	fmt.Printf("Description: %s\n", strings.ReplaceAll(report.description, "\n", "\n             "))
	if len(report.sent) > 0 {
		fmt.Printf("Sent:        %s\n", strings.Join(report.sent, ", "))
	}
	if len(report.received) > 0 {
		fmt.Printf("Received:    %s\n", strings.Join(report.received, ", "))
	}
}

func formatChange(value, currency, issuer string) string {
	display := explain.NormalizeCurrencyCode(currency)
	if issuer != "" {
		return fmt.Sprintf("%s %s (%s)", value, display, issuer)
	}
	return fmt.Sprintf("%s %s", value, display)
}

// loadTransaction reads a transaction JSON file and instantiates its decoded
// entity. Metadata may live under "meta" or "metaData" next to the
// transaction fields.
func loadTransaction(path string, opts fields.Options) (txn.Transaction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	var rawMeta map[string]any
	if m, ok := raw["meta"].(map[string]any); ok {
		rawMeta = m
		delete(raw, "meta")
	} else if m, ok := raw["metaData"].(map[string]any); ok {
		rawMeta = m
		delete(raw, "metaData")
	}

	return txn.Instantiate(raw, rawMeta, opts)
}
