package entity

// KVRecord backs the sqlite flavor of the key-value blob store. Each row is
// one JSON-serialized collection (menu, a user's cart, the order ledger).
type KVRecord struct {
	Key   string `gorm:"primaryKey;size:191"`
	Value []byte
}

func (KVRecord) TableName() string { return "kv_records" }
