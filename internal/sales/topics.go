package sales

const (
	TopicTransactionCommitted = "kasir.transaction.committed"
	TopicTransactionEdited    = "kasir.transaction.edited"
)

// Partition key = transaction id.
func PartitionKey(transactionID string) []byte { return []byte(transactionID) }
