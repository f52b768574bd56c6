package database

import "strconv"

// GetSetting returns the raw value for key and whether it was present.
func (d *Database) GetSetting(key string) (string, bool) {
	var value *string
	err := d.DB.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err != nil {
		return "", false
	}
	if value != nil {
		return *value, true
	}
	return "", false
}

// SetSetting writes key, replacing any existing value.
func (d *Database) SetSetting(key, value string) error {
	_, err := d.DB.Exec("INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value", key, value)
	return wrapSettingErr("set", err)
}

// GetIntSetting reads key as an integer; missing or malformed values report
// absent.
func (d *Database) GetIntSetting(key string) (int, bool) {
	raw, ok := d.GetSetting(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

// SetIntSetting writes key as an integer.
func (d *Database) SetIntSetting(key string, value int) error {
	return d.SetSetting(key, strconv.Itoa(value))
}

// AddIntSetting adds delta to the integer at key, treating a missing key
// as zero. The arithmetic runs inside sqlite so concurrent writers cannot
// lose an increment.
func (d *Database) AddIntSetting(key string, delta int) error {
	_, err := d.DB.Exec(`INSERT INTO settings (key, value) VALUES (?, CAST(? AS TEXT))
		ON CONFLICT(key) DO UPDATE SET value = CAST(CAST(value AS INTEGER) + ? AS TEXT)`, key, delta, delta)
	return wrapSettingErr("add", err)
}
