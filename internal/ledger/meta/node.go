// Package meta reconstructs semantic mutations from a transaction's
// post-execution metadata: per-currency balance deltas, created ticket
// sequences, AMM pseudo-account identifiers, claim-reward status and offer
// status, all computed purely from affected-node before/after snapshots.
package meta

import (
	"errors"
	"fmt"
)

// DiffType is how a ledger entry was touched by the transaction.
type DiffType string

const (
	CreatedNode  DiffType = "CreatedNode"
	ModifiedNode DiffType = "ModifiedNode"
	DeletedNode  DiffType = "DeletedNode"
)

// Ledger entry type names that matter to the engine.
const (
	entryAccountRoot = "AccountRoot"
	entryRippleState = "RippleState"
	entryTicket      = "Ticket"
	entryAMM         = "AMM"
	entryOffer       = "Offer"
	entryNFTokenPage = "NFTokenPage"
	entryEmittedTxn  = "EmittedTxn"
)

// ErrMalformedMeta reports structurally invalid metadata. Absent metadata is
// not an error; only a present-but-broken affected-node list is.
var ErrMalformedMeta = errors.New("malformed transaction metadata")

// Node is one affected-node snapshot flattened with its diff type.
type Node struct {
	Diff            DiffType
	LedgerEntryType string
	LedgerIndex     string
	NewFields       map[string]any
	FinalFields     map[string]any
	PreviousFields  map[string]any
}

// fields returns the node's definitive field set: NewFields for created
// entries, FinalFields otherwise.
func (n Node) fields() map[string]any {
	if n.Diff == CreatedNode {
		return n.NewFields
	}
	return n.FinalFields
}

// account returns the Account field of the definitive field set.
func (n Node) account() string {
	account, _ := n.fields()["Account"].(string)
	return account
}

// Meta is the parsed view over one transaction's metadata.
type Meta struct {
	raw         map[string]any
	nodes       []Node
	hookExecs   []map[string]any
	nativeAsset string
	result      string
}

// Parse normalizes raw metadata into affected nodes. A nil or empty metadata
// map yields an empty Meta (pseudo and unsubmitted transactions have none);
// a structurally invalid affected-node list fails with ErrMalformedMeta.
func Parse(raw map[string]any, nativeAsset string) (*Meta, error) {
	if nativeAsset == "" {
		nativeAsset = "XRP"
	}
	m := &Meta{raw: raw, nativeAsset: nativeAsset}
	if len(raw) == 0 {
		return m, nil
	}

	m.result, _ = raw["TransactionResult"].(string)

	if affected, present := raw["AffectedNodes"]; present {
		list, ok := affected.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: AffectedNodes is not a list", ErrMalformedMeta)
		}
		m.nodes = make([]Node, 0, len(list))
		for i, item := range list {
			node, err := parseNode(item)
			if err != nil {
				return nil, fmt.Errorf("%w: node %d: %v", ErrMalformedMeta, i, err)
			}
			m.nodes = append(m.nodes, node)
		}
	}

	if hooks, ok := raw["HookExecutions"].([]any); ok {
		for _, item := range hooks {
			wrapper, ok := item.(map[string]any)
			if !ok {
				continue
			}
			if exec, ok := wrapper["HookExecution"].(map[string]any); ok {
				m.hookExecs = append(m.hookExecs, exec)
			}
		}
	}

	return m, nil
}

func parseNode(item any) (Node, error) {
	wrapper, ok := item.(map[string]any)
	if !ok {
		return Node{}, errors.New("affected node is not an object")
	}

	for _, diff := range []DiffType{CreatedNode, ModifiedNode, DeletedNode} {
		inner, present := wrapper[string(diff)]
		if !present {
			continue
		}
		body, ok := inner.(map[string]any)
		if !ok {
			return Node{}, fmt.Errorf("%s is not an object", diff)
		}
		node := Node{Diff: diff}
		node.LedgerEntryType, _ = body["LedgerEntryType"].(string)
		node.LedgerIndex, _ = body["LedgerIndex"].(string)
		node.NewFields, _ = body["NewFields"].(map[string]any)
		node.FinalFields, _ = body["FinalFields"].(map[string]any)
		node.PreviousFields, _ = body["PreviousFields"].(map[string]any)
		return node, nil
	}

	return Node{}, errors.New("unknown diff type")
}

// Nodes returns the normalized affected nodes.
func (m *Meta) Nodes() []Node {
	return m.nodes
}

// Empty reports whether the transaction carried no metadata at all.
func (m *Meta) Empty() bool {
	return len(m.raw) == 0
}

// TransactionResult returns the engine result code recorded in the metadata.
func (m *Meta) TransactionResult() string {
	return m.result
}

// HookExecutions returns hook execution records carried in the metadata.
func (m *Meta) HookExecutions() []map[string]any {
	return m.hookExecs
}
