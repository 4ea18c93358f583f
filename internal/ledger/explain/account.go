package explain

import (
	"fmt"
	"strings"

	"github.com/ledgerlens/ledgerlens/internal/ledger/meta"
	"github.com/ledgerlens/ledgerlens/internal/ledger/txn"
)

type trustSetExplainer struct {
	explainer
	tx *txn.TrustSet
}

func (e *trustSetExplainer) EventsLabel() (string, error) {
	if e.tx.IsRemoval() {
		return "Remove Asset", nil
	}
	if e.account == e.tx.Issuer() {
		return "Incoming Trust Line", nil
	}
	return "Add Asset", nil
}

func (e *trustSetExplainer) Description() (string, error) {
	currency := NormalizeCurrencyCode(e.tx.Currency())
	if e.tx.IsRemoval() {
		return fmt.Sprintf("%s removed the %s trust line to %s.",
			e.tx.Account(), currency, e.tx.Issuer()), nil
	}
	return fmt.Sprintf("%s set a %s trust line to %s with a limit of %s.",
		e.tx.Account(), currency, e.tx.Issuer(), e.tx.Limit()), nil
}

func (e *trustSetExplainer) Participants() (Participants, error) {
	return e.withEnd(e.tx.Issuer(), nil)
}

type accountSetExplainer struct {
	explainer
	tx *txn.AccountSet
}

func (e *accountSetExplainer) EventsLabel() (string, error) {
	if e.tx.IsCancelTicket() {
		return "Cancel Ticket", nil
	}
	return "Account Settings", nil
}

func (e *accountSetExplainer) Description() (string, error) {
	if e.tx.IsCancelTicket() {
		return fmt.Sprintf("%s cancelled ticket %d.", e.tx.Account(), *e.tx.TicketSequence()), nil
	}
	if e.tx.IsNoOperation() {
		return fmt.Sprintf("%s submitted an account settings update that changes nothing.", e.tx.Account()), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s updated its account settings.", e.tx.Account())
	if flag := e.tx.SetFlag(); flag != nil {
		fmt.Fprintf(&b, "\nIt sets the account flag %d.", *flag)
	}
	if flag := e.tx.ClearFlag(); flag != nil {
		fmt.Fprintf(&b, "\nIt clears the account flag %d.", *flag)
	}
	if domain := e.tx.Domain(); domain != "" {
		fmt.Fprintf(&b, "\nIt sets the account domain to %s.", domain)
	}
	if rate := e.tx.TransferRate(); rate != nil {
		fmt.Fprintf(&b, "\nIt sets the transfer rate to %g%%.", *rate)
	}
	if minter := e.tx.NFTokenMinter(); minter != "" {
		fmt.Fprintf(&b, "\nIt authorizes %s to mint tokens on its behalf.", minter)
	}
	return b.String(), nil
}

type accountDeleteExplainer struct {
	explainer
	tx *txn.AccountDelete
}

func (e *accountDeleteExplainer) EventsLabel() (string, error) { return "Delete Account", nil }

func (e *accountDeleteExplainer) Description() (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s deleted its account.\nThe remaining balance was sent to %s.",
		e.tx.Account(), e.tx.Destination())
	if tag := e.tx.DestinationTag(); tag != nil {
		fmt.Fprintf(&b, "\nThe transaction has a destination tag: %d.", *tag)
	}
	return b.String(), nil
}

func (e *accountDeleteExplainer) Participants() (Participants, error) {
	return e.withEnd(e.tx.Destination(), e.tx.DestinationTag())
}

type setRegularKeyExplainer struct {
	explainer
	tx *txn.SetRegularKey
}

func (e *setRegularKeyExplainer) EventsLabel() (string, error) {
	if e.tx.IsRemoval() {
		return "Remove Regular Key", nil
	}
	return "Set Regular Key", nil
}

func (e *setRegularKeyExplainer) Description() (string, error) {
	if e.tx.IsRemoval() {
		return fmt.Sprintf("%s removed its regular key.", e.tx.Account()), nil
	}
	return fmt.Sprintf("%s set its regular key to %s.", e.tx.Account(), e.tx.RegularKey()), nil
}

func (e *setRegularKeyExplainer) Participants() (Participants, error) {
	return e.withEnd(e.tx.RegularKey(), nil)
}

type signerListSetExplainer struct {
	explainer
	tx *txn.SignerListSet
}

func (e *signerListSetExplainer) EventsLabel() (string, error) {
	if e.tx.IsRemoval() {
		return "Remove Signer List", nil
	}
	return "Set Signer List", nil
}

func (e *signerListSetExplainer) Description() (string, error) {
	if e.tx.IsRemoval() {
		return fmt.Sprintf("%s removed its signer list.", e.tx.Account()), nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s installed a signer list with a quorum of %d.",
		e.tx.Account(), e.tx.SignerQuorum())
	for _, entry := range e.tx.SignerEntries() {
		fmt.Fprintf(&b, "\nSigner %s has weight %d.", entry.Account, entry.SignerWeight)
	}
	return b.String(), nil
}

type depositPreauthExplainer struct {
	explainer
	tx *txn.DepositPreauth
}

func (e *depositPreauthExplainer) EventsLabel() (string, error) {
	if e.tx.Unauthorize() != "" {
		return "Remove Deposit Authorization", nil
	}
	return "Authorize Deposits", nil
}

func (e *depositPreauthExplainer) Description() (string, error) {
	if unauthorized := e.tx.Unauthorize(); unauthorized != "" {
		return fmt.Sprintf("%s revoked the deposit preauthorization of %s.",
			e.tx.Account(), unauthorized), nil
	}
	return fmt.Sprintf("%s preauthorized %s to send deposits.",
		e.tx.Account(), e.tx.Authorize()), nil
}

func (e *depositPreauthExplainer) Participants() (Participants, error) {
	counterparty := e.tx.Authorize()
	if counterparty == "" {
		counterparty = e.tx.Unauthorize()
	}
	return e.withEnd(counterparty, nil)
}

type delegateSetExplainer struct {
	explainer
	tx *txn.DelegateSet
}

func (e *delegateSetExplainer) EventsLabel() (string, error) { return "Delegate Permissions", nil }

func (e *delegateSetExplainer) Description() (string, error) {
	permissions := e.tx.Permissions()
	if len(permissions) == 0 {
		return fmt.Sprintf("%s revoked the permissions delegated to %s.",
			e.tx.Account(), e.tx.Authorize()), nil
	}
	return fmt.Sprintf("%s delegated the following permissions to %s: %s.",
		e.tx.Account(), e.tx.Authorize(), strings.Join(permissions, ", ")), nil
}

func (e *delegateSetExplainer) Participants() (Participants, error) {
	return e.withEnd(e.tx.Authorize(), nil)
}

type setRemarksExplainer struct {
	explainer
	tx *txn.SetRemarks
}

func (e *setRemarksExplainer) EventsLabel() (string, error) { return "Set Remarks", nil }

func (e *setRemarksExplainer) Description() (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s set remarks on object %s.", e.tx.Account(), e.tx.ObjectID())
	for _, remark := range e.tx.Remarks() {
		fmt.Fprintf(&b, "\nRemark %q", remark.Name)
		if remark.Value != "" {
			fmt.Fprintf(&b, " = %q", remark.Value)
		}
		if remark.Immutable {
			b.WriteString(" (immutable)")
		}
		b.WriteString(".")
	}
	return b.String(), nil
}

type ticketCreateExplainer struct {
	explainer
	tx *txn.TicketCreate
}

func (e *ticketCreateExplainer) EventsLabel() (string, error) { return "Create Ticket", nil }

func (e *ticketCreateExplainer) Description() (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s created %d ticket(s).", e.tx.Account(), e.tx.TicketCount())
	if sequences := e.tx.TicketsSequence(); len(sequences) > 0 {
		b.WriteString("\nThe assigned ticket sequences are:")
		for _, sequence := range sequences {
			fmt.Fprintf(&b, " %d", sequence)
		}
		b.WriteString(".")
	}
	return b.String(), nil
}

type claimRewardExplainer struct {
	explainer
	tx *txn.ClaimReward
}

func (e *claimRewardExplainer) EventsLabel() (string, error) {
	if e.tx.Status() == meta.ClaimOptOut {
		return "Opt Out of Rewards", nil
	}
	return "Claim Reward", nil
}

func (e *claimRewardExplainer) Description() (string, error) {
	if e.tx.Status() == meta.ClaimOptOut {
		return fmt.Sprintf("%s opted out of balance rewards.", e.tx.Account()), nil
	}
	if issuer := e.tx.Issuer(); issuer != "" {
		return fmt.Sprintf("%s claimed balance rewards issued by %s.", e.tx.Account(), issuer), nil
	}
	return fmt.Sprintf("%s claimed balance rewards.", e.tx.Account()), nil
}

func (e *claimRewardExplainer) Participants() (Participants, error) {
	return e.withEnd(e.tx.Issuer(), nil)
}

type setHookExplainer struct {
	explainer
	tx *txn.SetHook
}

func (e *setHookExplainer) EventsLabel() (string, error) { return "Set Hook", nil }

func (e *setHookExplainer) Description() (string, error) {
	return fmt.Sprintf("%s updated its hook set; %d hook position(s) are affected.",
		e.tx.Account(), len(e.tx.Hooks())), nil
}

type enableAmendmentExplainer struct {
	explainer
	tx *txn.EnableAmendment
}

func (e *enableAmendmentExplainer) EventsLabel() (string, error) { return "Enable Amendment", nil }

func (e *enableAmendmentExplainer) Description() (string, error) {
	return fmt.Sprintf("Amendment %s changed status on the network.", e.tx.Amendment()), nil
}

func (e *enableAmendmentExplainer) Participants() (Participants, error) {
	return Participants{}, nil
}
