package explain

import (
	"fmt"
	"strings"

	"github.com/ledgerlens/ledgerlens/internal/ledger/txn"
)

type nftokenMintExplainer struct {
	explainer
	tx *txn.NFTokenMint
}

func (e *nftokenMintExplainer) EventsLabel() (string, error) { return "Mint NFT", nil }

func (e *nftokenMintExplainer) Description() (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s minted a non-fungible token with taxon %d.",
		e.tx.Account(), e.tx.NFTokenTaxon())
	if id := e.tx.NFTokenID(); id != "" {
		fmt.Fprintf(&b, "\nThe minted token's ID is %s.", id)
	}
	if issuer := e.tx.Issuer(); issuer != "" {
		fmt.Fprintf(&b, "\nIt was minted on behalf of %s.", issuer)
	}
	if fee := e.tx.TransferFee(); fee != nil {
		fmt.Fprintf(&b, "\nSecondary sales carry a transfer fee of %g%%.", *fee)
	}
	if uri := e.tx.URI(); uri != "" {
		fmt.Fprintf(&b, "\nThe token's URI is %s.", uri)
	}
	return b.String(), nil
}

func (e *nftokenMintExplainer) Participants() (Participants, error) {
	return e.withEnd(e.tx.Issuer(), nil)
}

type nftokenBurnExplainer struct {
	explainer
	tx *txn.NFTokenBurn
}

func (e *nftokenBurnExplainer) EventsLabel() (string, error) { return "Burn NFT", nil }

func (e *nftokenBurnExplainer) Description() (string, error) {
	if owner := e.tx.Owner(); owner != "" && owner != e.tx.Account() {
		return fmt.Sprintf("%s burned token %s held by %s.",
			e.tx.Account(), e.tx.NFTokenID(), owner), nil
	}
	return fmt.Sprintf("%s burned token %s.", e.tx.Account(), e.tx.NFTokenID()), nil
}

func (e *nftokenBurnExplainer) Participants() (Participants, error) {
	return e.withEnd(e.tx.Owner(), nil)
}

type nftokenCreateOfferExplainer struct {
	explainer
	tx *txn.NFTokenCreateOffer
}

func (e *nftokenCreateOfferExplainer) EventsLabel() (string, error) {
	if e.tx.IsSellOffer() {
		return "Create NFT Sell Offer", nil
	}
	return "Create NFT Buy Offer", nil
}

func (e *nftokenCreateOfferExplainer) Description() (string, error) {
	amount := e.tx.Amount()

	var b strings.Builder
	if e.tx.IsSellOffer() {
		fmt.Fprintf(&b, "%s offered to sell token %s for %s %s.",
			e.tx.Account(), e.tx.NFTokenID(), amount.Value, NormalizeCurrencyCode(amount.Currency))
	} else {
		fmt.Fprintf(&b, "%s offered to buy token %s for %s %s.",
			e.tx.Account(), e.tx.NFTokenID(), amount.Value, NormalizeCurrencyCode(amount.Currency))
	}
	if destination := e.tx.Destination(); destination != "" {
		fmt.Fprintf(&b, "\nOnly %s can accept the offer.", destination)
	}
	if expiration := e.tx.Expiration(); expiration != nil {
		fmt.Fprintf(&b, "\nThe offer expires at %s.",
			expiration.UTC().Format("2006-01-02 15:04:05 UTC"))
	}
	return b.String(), nil
}

func (e *nftokenCreateOfferExplainer) Participants() (Participants, error) {
	return e.withEnd(e.tx.Destination(), nil)
}

func (e *nftokenCreateOfferExplainer) MonetaryDetails() (*MonetaryDetails, error) {
	return e.monetary(amountFactor(e.tx.Amount(), PotentialEffect)...)
}

type nftokenAcceptOfferExplainer struct {
	explainer
	tx *txn.NFTokenAcceptOffer
}

func (e *nftokenAcceptOfferExplainer) EventsLabel() (string, error) { return "Accept NFT Offer", nil }

func (e *nftokenAcceptOfferExplainer) Description() (string, error) {
	sell := e.tx.NFTokenSellOffer()
	buy := e.tx.NFTokenBuyOffer()

	var b strings.Builder
	switch {
	case sell != "" && buy != "":
		fmt.Fprintf(&b, "%s brokered the exchange of a token between offers %s and %s.",
			e.tx.Account(), sell, buy)
		if fee := e.tx.NFTokenBrokerFee(); fee != nil {
			fmt.Fprintf(&b, "\nThe broker fee is %s %s.",
				fee.Value, NormalizeCurrencyCode(fee.Currency))
		}
	case sell != "":
		fmt.Fprintf(&b, "%s accepted the sell offer %s.", e.tx.Account(), sell)
	default:
		fmt.Fprintf(&b, "%s accepted the buy offer %s.", e.tx.Account(), buy)
	}
	return b.String(), nil
}

type nftokenCancelOfferExplainer struct {
	explainer
	tx *txn.NFTokenCancelOffer
}

func (e *nftokenCancelOfferExplainer) EventsLabel() (string, error) { return "Cancel NFT Offers", nil }

func (e *nftokenCancelOfferExplainer) Description() (string, error) {
	offers := e.tx.NFTokenOffers()

	var b strings.Builder
	fmt.Fprintf(&b, "%s cancelled %d token offer(s):", e.tx.Account(), len(offers))
	for _, offer := range offers {
		fmt.Fprintf(&b, "\n%s", offer)
	}
	return b.String(), nil
}

type nftokenModifyExplainer struct {
	explainer
	tx *txn.NFTokenModify
}

func (e *nftokenModifyExplainer) EventsLabel() (string, error) { return "Modify NFT", nil }

func (e *nftokenModifyExplainer) Description() (string, error) {
	if uri := e.tx.URI(); uri != "" {
		return fmt.Sprintf("%s changed the URI of token %s to %s.",
			e.tx.Account(), e.tx.NFTokenID(), uri), nil
	}
	return fmt.Sprintf("%s cleared the URI of token %s.",
		e.tx.Account(), e.tx.NFTokenID()), nil
}

func (e *nftokenModifyExplainer) Participants() (Participants, error) {
	return e.withEnd(e.tx.Owner(), nil)
}

type uriTokenMintExplainer struct {
	explainer
	tx *txn.URITokenMint
}

func (e *uriTokenMintExplainer) EventsLabel() (string, error) { return "Mint URI Token", nil }

func (e *uriTokenMintExplainer) Description() (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s minted a URI token for %s.", e.tx.Account(), e.tx.URI())
	if id := e.tx.URITokenID(); id != "" {
		fmt.Fprintf(&b, "\nThe minted token's ID is %s.", id)
	}
	if amount := e.tx.Amount(); amount != nil {
		fmt.Fprintf(&b, "\nIt is listed for sale at %s %s.",
			amount.Value, NormalizeCurrencyCode(amount.Currency))
		if destination := e.tx.Destination(); destination != "" {
			fmt.Fprintf(&b, "\nOnly %s can buy it.", destination)
		}
	}
	if e.tx.IsBurnable() {
		b.WriteString("\nThe issuer keeps the right to burn the token.")
	}
	return b.String(), nil
}

func (e *uriTokenMintExplainer) Participants() (Participants, error) {
	return e.withEnd(e.tx.Destination(), nil)
}

func (e *uriTokenMintExplainer) MonetaryDetails() (*MonetaryDetails, error) {
	return e.monetary(amountFactor(e.tx.Amount(), PotentialEffect)...)
}

type uriTokenBurnExplainer struct {
	explainer
	tx *txn.URITokenBurn
}

func (e *uriTokenBurnExplainer) EventsLabel() (string, error) { return "Burn URI Token", nil }

func (e *uriTokenBurnExplainer) Description() (string, error) {
	return fmt.Sprintf("%s burned URI token %s.", e.tx.Account(), e.tx.URITokenID()), nil
}

type uriTokenBuyExplainer struct {
	explainer
	tx *txn.URITokenBuy
}

func (e *uriTokenBuyExplainer) EventsLabel() (string, error) { return "Buy URI Token", nil }

func (e *uriTokenBuyExplainer) Description() (string, error) {
	amount := e.tx.Amount()
	return fmt.Sprintf("%s bought URI token %s for %s %s.",
		e.tx.Account(), e.tx.URITokenID(), amount.Value, NormalizeCurrencyCode(amount.Currency)), nil
}

func (e *uriTokenBuyExplainer) MonetaryDetails() (*MonetaryDetails, error) {
	return e.monetary(amountFactor(e.tx.Amount(), ImmediateEffect)...)
}

type uriTokenCreateSellOfferExplainer struct {
	explainer
	tx *txn.URITokenCreateSellOffer
}

func (e *uriTokenCreateSellOfferExplainer) EventsLabel() (string, error) {
	return "Create URI Token Sell Offer", nil
}

func (e *uriTokenCreateSellOfferExplainer) Description() (string, error) {
	amount := e.tx.Amount()

	var b strings.Builder
	fmt.Fprintf(&b, "%s listed URI token %s for sale at %s %s.",
		e.tx.Account(), e.tx.URITokenID(), amount.Value, NormalizeCurrencyCode(amount.Currency))
	if destination := e.tx.Destination(); destination != "" {
		fmt.Fprintf(&b, "\nOnly %s can buy it.", destination)
	}
	return b.String(), nil
}

func (e *uriTokenCreateSellOfferExplainer) Participants() (Participants, error) {
	return e.withEnd(e.tx.Destination(), nil)
}

func (e *uriTokenCreateSellOfferExplainer) MonetaryDetails() (*MonetaryDetails, error) {
	return e.monetary(amountFactor(e.tx.Amount(), PotentialEffect)...)
}

type uriTokenCancelSellOfferExplainer struct {
	explainer
	tx *txn.URITokenCancelSellOffer
}

func (e *uriTokenCancelSellOfferExplainer) EventsLabel() (string, error) {
	return "Cancel URI Token Sell Offer", nil
}

func (e *uriTokenCancelSellOfferExplainer) Description() (string, error) {
	return fmt.Sprintf("%s withdrew the sell offer on URI token %s.",
		e.tx.Account(), e.tx.URITokenID()), nil
}
