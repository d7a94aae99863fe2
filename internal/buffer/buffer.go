// internal/buffer/buffer.go
package buffer

// Buffer is the text store behind a host document.
type Buffer interface {
	Load(filePath string) error
	Save(filePath string) error
	Lines() [][]byte
	Line(index int) ([]byte, error)
	LineCount() int
	Bytes() []byte
	SetBytes(content []byte)
	FilePath() string
	SetFilePath(filePath string)
	IsModified() bool
}
