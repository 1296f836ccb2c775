package audioview

// Mono is a single contiguous channel of samples. It is an ordinary slice,
// so it converts freely to and from []T.
type Mono[T Sample] []T

func (m Mono[T]) NumChannels() int       { return 1 }
func (m Mono[T]) SamplesPerChannel() int { return len(m) }
func (m Mono[T]) Len() int               { return len(m) }
func (m Mono[T]) IsInterleaved() bool    { return true }

func (m Mono[T]) numSegments() int { return 1 }
func (m Mono[T]) segment(int) []T  { return m }
