package store

import "database/sql"

// KV is the string-keyed prefs table. Each preference store owns one key
// and tolerates that key being absent or malformed independently of the
// others.
type KV struct {
	db *sql.DB
}

func NewKV(db *sql.DB) *KV {
	return &KV{db: db}
}

// Get returns the stored value for key, with ok=false when absent.
func (kv *KV) Get(key string) (value string, ok bool, err error) {
	err = kv.db.QueryRow("SELECT value FROM prefs WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Put upserts a value. Last writer wins; there is only one writer.
func (kv *KV) Put(key, value string) error {
	_, err := kv.db.Exec(`
		INSERT INTO prefs (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}

// Delete removes a key; deleting an absent key is not an error.
func (kv *KV) Delete(key string) error {
	_, err := kv.db.Exec("DELETE FROM prefs WHERE key = ?", key)
	return err
}
