package linear

// Exec exposes exec for testing.
func (f *Frontend) Exec(line string) (bool, error) {
	return f.exec(line)
}
