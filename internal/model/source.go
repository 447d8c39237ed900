package model

// Path represents a file system path or an afs URL.
type Path string

// Source is one mapping file scheduled for conversion.
type Source struct {
	Origin Path   // ProGuard mapping input
	Output Path   // TSRG output destination
	Hash   string // fingerprint of Origin contents, filled when read
}
