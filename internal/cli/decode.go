package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ledgerlens/ledgerlens/internal/ledger/fields"
	"github.com/ledgerlens/ledgerlens/internal/ledger/objects"
)

var decodeAsObject bool

var decodeCmd = &cobra.Command{
	Use:   "decode [file...]",
	Short: "Decode transaction or ledger object JSON files",
	Long: `Decode reads JSON files and prints the normalized view of each
payload: the discriminant type, the common fields, and the transaction
result when metadata is present. Files holding ledger objects (a
LedgerEntryType discriminant) are decoded with --object.

Example:
    ledgerlens decode tx.json
    ledgerlens decode --object check_entry.json`,
	Args: cobra.MinimumNArgs(1),
	Run:  runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)

	decodeCmd.Flags().BoolVar(&decodeAsObject, "object", false, "decode as a ledger object instead of a transaction")
}

func runDecode(cmd *cobra.Command, args []string) {
	opts, err := decodeOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	failed := false
	for i, path := range args {
		if i > 0 {
			fmt.Println()
		}
		if err := decodeFile(path, opts); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s: %v\n", path, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func decodeFile(path string, opts fields.Options) error {
	fmt.Printf("=== %s ===\n", path)

	if decodeAsObject {
		return decodeObjectFile(path, opts)
	}

	transaction, err := loadTransaction(path, opts)
	if err != nil {
		return err
	}

	fmt.Printf("Type:    %s\n", transaction.TypeName())
	if account := transaction.Account(); account != "" {
		fmt.Printf("Account: %s\n", account)
	}
	if fee := transaction.Fee(); fee != nil {
		fmt.Printf("Fee:     %s %s\n", fee.Value, fee.Currency)
	}
	if flags := transaction.Flags(); flags != 0 {
		fmt.Printf("Flags:   %d\n", flags)
	}
	if result := transaction.Meta().TransactionResult(); result != "" {
		fmt.Printf("Result:  %s\n", result)
	}
	if transaction.IsPseudo() {
		fmt.Println("Kind:    pseudo (signing request, never on ledger)")
	}

	for owner, changes := range transaction.Meta().BalanceChanges() {
		for _, change := range changes {
			fmt.Printf("Balance: %s %s %s %s\n",
				owner, change.Action, change.Value, change.Currency)
		}
	}
	return nil
}

func decodeObjectFile(path string, opts fields.Options) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	object, err := objects.Instantiate(raw, opts)
	if err != nil {
		return err
	}

	fmt.Printf("Type:  %s\n", object.EntryType())
	if index := object.Index(); index != "" {
		fmt.Printf("Index: %s\n", index)
	}
	return nil
}
