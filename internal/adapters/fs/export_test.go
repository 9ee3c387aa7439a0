package fs

// SetReadFunc swaps the file read function, letting tests observe and delay
// filesystem probes.
func (r *Resolver) SetReadFunc(read func(string) ([]byte, error)) {
	r.read = read
}
