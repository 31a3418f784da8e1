package entity

// ReviewStatus estado de revisión compartido por Expense y Document.
type ReviewStatus string

const (
	ReviewPending   ReviewStatus = "pending"
	ReviewProcessed ReviewStatus = "processed"
	ReviewRejected  ReviewStatus = "rejected"
)

// Valid indica si el estado pertenece al conjunto cerrado.
func (s ReviewStatus) Valid() bool {
	switch s {
	case ReviewPending, ReviewProcessed, ReviewRejected:
		return true
	}
	return false
}
