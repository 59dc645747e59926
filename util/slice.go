package util

// Chunks splits the given slice into consecutive
// sub-slices of at most size elements, preserving order
func Chunks[T any](slice []T, size int) [][]T {
	if size <= 0 {
		size = len(slice)
	}
	var chunks [][]T
	for start := 0; start < len(slice); start += size {
		end := start + size
		if end > len(slice) {
			end = len(slice)
		}
		chunks = append(chunks, slice[start:end])
	}
	return chunks
}
