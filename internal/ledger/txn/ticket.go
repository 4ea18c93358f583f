package txn

import (
	"sync"

	"github.com/ledgerlens/ledgerlens/internal/ledger/fields"
)

// TicketCreate sets aside one or more sequence numbers as tickets.
type TicketCreate struct {
	*Base

	once      sync.Once
	sequences []uint32
}

func init() {
	register(TypeTicketCreate, fields.Schema{
		"TicketCount": {Kind: fields.UInt32, Required: true},
	}, func(b *Base) Transaction { return &TicketCreate{Base: b} })
}

func (t *TicketCreate) TicketCount() uint32 {
	if v := t.uint32p("TicketCount"); v != nil {
		return *v
	}
	return 0
}

// TicketsSequence lists the sequence numbers of the tickets the transaction
// actually created, in assignment order.
func (t *TicketCreate) TicketsSequence() []uint32 {
	t.once.Do(func() {
		t.sequences = t.meta.TicketSequences()
	})
	return t.sequences
}
