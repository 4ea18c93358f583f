package meta

import "sort"

// OfferStatus is the reconstructed outcome of an offer after execution.
type OfferStatus string

const (
	OfferCreated         OfferStatus = "CREATED"
	OfferPartiallyFilled OfferStatus = "PARTIALLY_FILLED"
	OfferFilled          OfferStatus = "FILLED"
	OfferCancelled       OfferStatus = "CANCELLED"
	OfferKilled          OfferStatus = "KILLED"
	OfferStatusUnknown   OfferStatus = "UNKNOWN"
)

// ClaimStatus is an account's reward claim opt-in state.
type ClaimStatus string

const (
	ClaimOptIn  ClaimStatus = "OPT_IN"
	ClaimOptOut ClaimStatus = "OPT_OUT"
)

// TicketSequences collects the sequence numbers of tickets created by the
// transaction, in ascending numeric order (assignment order).
func (m *Meta) TicketSequences() []uint32 {
	var sequences []uint32
	for _, node := range m.nodes {
		if node.Diff != CreatedNode || node.LedgerEntryType != entryTicket {
			continue
		}
		if seq, ok := node.NewFields["TicketSequence"].(float64); ok {
			sequences = append(sequences, uint32(seq))
		}
	}
	sort.Slice(sequences, func(i, j int) bool { return sequences[i] < sequences[j] })
	return sequences
}

// AMMAccountID returns the pseudo-account address of the AMM entry touched
// by the transaction, or empty when no AMM entry is present. Non-AMM
// transactions simply yield no result.
func (m *Meta) AMMAccountID() string {
	for _, node := range m.nodes {
		if node.LedgerEntryType != entryAMM {
			continue
		}
		switch node.Diff {
		case CreatedNode:
			account, _ := node.NewFields["Account"].(string)
			return account
		case ModifiedNode:
			account, _ := node.FinalFields["Account"].(string)
			return account
		}
	}
	return ""
}

// rewardFields are the account-root fields Xahau maintains for reward
// claims; opting out deletes them, claiming updates them.
var rewardFields = []string{"RewardLgrFirst", "RewardLgrLast", "RewardAccumulator", "RewardTime"}

// ClaimStatusFor inspects whether the observing account's reward state
// transitioned in the metadata. It returns nil when no transition happened;
// callers must then defer to the transaction's own opt-out flag.
func (m *Meta) ClaimStatusFor(observer string) *ClaimStatus {
	for _, node := range m.nodes {
		if node.Diff != ModifiedNode || node.LedgerEntryType != entryAccountRoot {
			continue
		}
		if node.account() != observer {
			continue
		}
		prevTouched := false
		for _, field := range rewardFields {
			if _, ok := node.PreviousFields[field]; ok {
				prevTouched = true
				break
			}
		}
		if !prevTouched {
			continue
		}
		status := ClaimOptIn
		if _, stillPresent := node.FinalFields["RewardLgrFirst"]; !stillPresent {
			status = ClaimOptOut
		}
		return &status
	}
	return nil
}

// offerStatus classifies a single offer node by its diff type. A filled
// offer is deleted with previous fields; a cancelled one is deleted clean.
func offerStatus(node Node) OfferStatus {
	switch node.Diff {
	case CreatedNode:
		return OfferCreated
	case ModifiedNode:
		return OfferPartiallyFilled
	case DeletedNode:
		if _, ok := node.PreviousFields["TakerPays"]; ok {
			return OfferFilled
		}
		return OfferCancelled
	default:
		return OfferStatusUnknown
	}
}

// OfferStatusChange reconstructs what happened to the owner's offer with the
// given ledger index. When the offer node is absent from the metadata the
// presence of a trust-line change for the owner disambiguates a fully
// crossed offer from a killed one.
func (m *Meta) OfferStatusChange(owner, offerIndex string) OfferStatus {
	status := OfferStatusUnknown
	for _, node := range m.nodes {
		if node.LedgerEntryType == entryOffer && node.LedgerIndex == offerIndex {
			status = offerStatus(node)
			break
		}
	}

	if status == OfferCreated || status == OfferStatusUnknown {
		hasRippleStateChange := false
		for _, node := range m.nodes {
			if node.Diff != ModifiedNode || node.LedgerEntryType != entryRippleState {
				continue
			}
			high, _ := node.FinalFields["HighLimit"].(map[string]any)
			low, _ := node.FinalFields["LowLimit"].(map[string]any)
			highIssuer, _ := high["issuer"].(string)
			lowIssuer, _ := low["issuer"].(string)
			if highIssuer == owner || lowIssuer == owner {
				hasRippleStateChange = true
				break
			}
		}

		if status == OfferStatusUnknown {
			if hasRippleStateChange {
				return OfferFilled
			}
			return OfferKilled
		}
		if hasRippleStateChange {
			return OfferPartiallyFilled
		}
	}

	return status
}

// MintedNFTokenID diffs the NFTokenPage entries to find the token id added
// by a mint. Returns empty when no new token appears.
func (m *Meta) MintedNFTokenID() string {
	previous := make(map[string]bool)
	var finals []string
	for _, node := range m.nodes {
		if node.LedgerEntryType != entryNFTokenPage {
			continue
		}
		for _, id := range nftokenIDs(node.PreviousFields) {
			previous[id] = true
		}
		finals = append(finals, nftokenIDs(node.NewFields)...)
		finals = append(finals, nftokenIDs(node.FinalFields)...)
	}
	for _, id := range finals {
		if !previous[id] {
			return id
		}
	}
	return ""
}

func nftokenIDs(entryFields map[string]any) []string {
	if entryFields == nil {
		return nil
	}
	tokens, ok := entryFields["NFTokens"].([]any)
	if !ok {
		return nil
	}
	var ids []string
	for _, item := range tokens {
		wrapper, ok := item.(map[string]any)
		if !ok {
			continue
		}
		inner, ok := wrapper["NFToken"].(map[string]any)
		if !ok {
			continue
		}
		if id, ok := inner["NFTokenID"].(string); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// EmittedTxns collects transactions emitted by hook executions.
func (m *Meta) EmittedTxns() []map[string]any {
	var emitted []map[string]any
	for _, node := range m.nodes {
		if node.Diff == CreatedNode && node.LedgerEntryType == entryEmittedTxn {
			if txn, ok := node.NewFields["EmittedTxn"].(map[string]any); ok {
				emitted = append(emitted, txn)
			}
		}
	}
	return emitted
}

// DeliveredAmount returns the metadata's delivered_amount (or DeliveredAmount)
// record for partial payments, raw wire form.
func (m *Meta) DeliveredAmount() any {
	if v, ok := m.raw["delivered_amount"]; ok {
		return v
	}
	return m.raw["DeliveredAmount"]
}
