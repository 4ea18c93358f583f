package explain

import (
	"fmt"
	"strings"

	"github.com/ledgerlens/ledgerlens/internal/ledger/txn"
)

type didSetExplainer struct {
	explainer
	tx *txn.DIDSet
}

func (e *didSetExplainer) EventsLabel() (string, error) { return "Set DID", nil }

func (e *didSetExplainer) Description() (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s updated its decentralized identifier.", e.tx.Account())
	if uri := e.tx.URI(); uri != "" {
		fmt.Fprintf(&b, "\nThe DID document URI is %s.", uri)
	}
	return b.String(), nil
}

type didDeleteExplainer struct {
	explainer
}

func (e *didDeleteExplainer) EventsLabel() (string, error) { return "Delete DID", nil }

func (e *didDeleteExplainer) Description() (string, error) {
	return fmt.Sprintf("%s deleted its decentralized identifier.", e.item.Account()), nil
}

type oracleSetExplainer struct {
	explainer
	tx *txn.OracleSet
}

func (e *oracleSetExplainer) EventsLabel() (string, error) { return "Update Price Oracle", nil }

func (e *oracleSetExplainer) Description() (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s updated price oracle %d.", e.tx.Account(), e.tx.OracleDocumentID())
	if provider := e.tx.Provider(); provider != "" {
		fmt.Fprintf(&b, "\nThe oracle provider is %s.", provider)
	}
	for _, price := range e.tx.PriceDataSeries() {
		fmt.Fprintf(&b, "\nIt quotes %s/%s at %d (scale %d).",
			NormalizeCurrencyCode(price.BaseAsset), NormalizeCurrencyCode(price.QuoteAsset),
			price.AssetPrice, price.Scale)
	}
	return b.String(), nil
}

type oracleDeleteExplainer struct {
	explainer
	tx *txn.OracleDelete
}

func (e *oracleDeleteExplainer) EventsLabel() (string, error) { return "Delete Price Oracle", nil }

func (e *oracleDeleteExplainer) Description() (string, error) {
	return fmt.Sprintf("%s deleted price oracle %d.", e.tx.Account(), e.tx.OracleDocumentID()), nil
}

type mptIssuanceCreateExplainer struct {
	explainer
	tx *txn.MPTokenIssuanceCreate
}

func (e *mptIssuanceCreateExplainer) EventsLabel() (string, error) { return "Create Token Issuance", nil }

func (e *mptIssuanceCreateExplainer) Description() (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s created a multi-purpose token issuance.", e.tx.Account())
	if maximum := e.tx.MaximumAmount(); maximum != nil {
		fmt.Fprintf(&b, "\nThe maximum issuance is %d.", *maximum)
	}
	if scale := e.tx.AssetScale(); scale != nil {
		fmt.Fprintf(&b, "\nThe asset scale is %d.", *scale)
	}
	if fee := e.tx.TransferFee(); fee != nil {
		fmt.Fprintf(&b, "\nTransfers carry a fee of %g%%.", *fee)
	}
	return b.String(), nil
}

type mptIssuanceDestroyExplainer struct {
	explainer
	tx *txn.MPTokenIssuanceDestroy
}

func (e *mptIssuanceDestroyExplainer) EventsLabel() (string, error) {
	return "Destroy Token Issuance", nil
}

func (e *mptIssuanceDestroyExplainer) Description() (string, error) {
	return fmt.Sprintf("%s destroyed token issuance %s.",
		e.tx.Account(), e.tx.MPTokenIssuanceID()), nil
}

type mptIssuanceSetExplainer struct {
	explainer
	tx *txn.MPTokenIssuanceSet
}

func (e *mptIssuanceSetExplainer) EventsLabel() (string, error) { return "Update Token Issuance", nil }

func (e *mptIssuanceSetExplainer) Description() (string, error) {
	if holder := e.tx.Holder(); holder != "" {
		return fmt.Sprintf("%s updated token issuance %s for holder %s.",
			e.tx.Account(), e.tx.MPTokenIssuanceID(), holder), nil
	}
	return fmt.Sprintf("%s updated token issuance %s.",
		e.tx.Account(), e.tx.MPTokenIssuanceID()), nil
}

func (e *mptIssuanceSetExplainer) Participants() (Participants, error) {
	return e.withEnd(e.tx.Holder(), nil)
}

type mptAuthorizeExplainer struct {
	explainer
	tx *txn.MPTokenAuthorize
}

func (e *mptAuthorizeExplainer) EventsLabel() (string, error) { return "Authorize Token Holder", nil }

func (e *mptAuthorizeExplainer) Description() (string, error) {
	if holder := e.tx.Holder(); holder != "" {
		return fmt.Sprintf("%s authorized %s for token issuance %s.",
			e.tx.Account(), holder, e.tx.MPTokenIssuanceID()), nil
	}
	return fmt.Sprintf("%s opted in to token issuance %s.",
		e.tx.Account(), e.tx.MPTokenIssuanceID()), nil
}

func (e *mptAuthorizeExplainer) Participants() (Participants, error) {
	return e.withEnd(e.tx.Holder(), nil)
}

type credentialCreateExplainer struct {
	explainer
	tx *txn.CredentialCreate
}

func (e *credentialCreateExplainer) EventsLabel() (string, error) { return "Issue Credential", nil }

func (e *credentialCreateExplainer) Description() (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s issued a %q credential about %s.",
		e.tx.Account(), e.tx.CredentialType(), e.tx.Subject())
	if expiration := e.tx.Expiration(); expiration != nil {
		fmt.Fprintf(&b, "\nThe credential expires at %s.",
			expiration.UTC().Format("2006-01-02 15:04:05 UTC"))
	}
	if uri := e.tx.URI(); uri != "" {
		fmt.Fprintf(&b, "\nSupporting evidence is at %s.", uri)
	}
	return b.String(), nil
}

func (e *credentialCreateExplainer) Participants() (Participants, error) {
	return e.withEnd(e.tx.Subject(), nil)
}

type credentialAcceptExplainer struct {
	explainer
	tx *txn.CredentialAccept
}

func (e *credentialAcceptExplainer) EventsLabel() (string, error) { return "Accept Credential", nil }

func (e *credentialAcceptExplainer) Description() (string, error) {
	return fmt.Sprintf("%s accepted the %q credential issued by %s.",
		e.tx.Account(), e.tx.CredentialType(), e.tx.Issuer()), nil
}

func (e *credentialAcceptExplainer) Participants() (Participants, error) {
	return e.withEnd(e.tx.Issuer(), nil)
}

type credentialDeleteExplainer struct {
	explainer
	tx *txn.CredentialDelete
}

func (e *credentialDeleteExplainer) EventsLabel() (string, error) { return "Delete Credential", nil }

func (e *credentialDeleteExplainer) Description() (string, error) {
	counterparty := e.tx.Subject()
	if counterparty == "" {
		counterparty = e.tx.Issuer()
	}
	if counterparty != "" {
		return fmt.Sprintf("%s deleted the %q credential involving %s.",
			e.tx.Account(), e.tx.CredentialType(), counterparty), nil
	}
	return fmt.Sprintf("%s deleted a %q credential.",
		e.tx.Account(), e.tx.CredentialType()), nil
}

func (e *credentialDeleteExplainer) Participants() (Participants, error) {
	counterparty := e.tx.Subject()
	if counterparty == "" {
		counterparty = e.tx.Issuer()
	}
	return e.withEnd(counterparty, nil)
}
