package cartsync

import (
	"time"

	"github.com/google/uuid"
)

// Branch says whether a mutation intent reached the server or was
// applied locally only.
type Branch string

const (
	BranchSynced    Branch = "SYNCED"
	BranchLocalOnly Branch = "LOCAL_ONLY"
)

type Op string

const (
	OpAdd      Op = "ADD"
	OpIncrease Op = "INCREASE"
	OpDecrease Op = "DECREASE"
	OpRemove   Op = "REMOVE"
)

// Outcome records how a single mutation intent resolved. Reason is set
// only on the local branch.
type Outcome struct {
	ID        uuid.UUID `json:"id"`
	Op        Op        `json:"op"`
	ProductID string    `json:"product_id"`
	Branch    Branch    `json:"branch"`
	Reason    string    `json:"reason,omitempty"`
	At        time.Time `json:"at"`
}

func (o Outcome) Synced() bool {
	return o.Branch == BranchSynced
}

func synced(op Op, productID string) Outcome {
	return Outcome{
		ID:        uuid.New(),
		Op:        op,
		ProductID: productID,
		Branch:    BranchSynced,
		At:        time.Now(),
	}
}

func localOnly(op Op, productID, reason string) Outcome {
	return Outcome{
		ID:        uuid.New(),
		Op:        op,
		ProductID: productID,
		Branch:    BranchLocalOnly,
		Reason:    reason,
		At:        time.Now(),
	}
}
