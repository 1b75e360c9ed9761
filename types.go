package xfft

import "github.com/cwbudde/xfft/internal/numeric"

// Complex is the type constraint for supported complex sample types.
// The canonical definition lives in internal/numeric.
type Complex = numeric.Complex

// Float is the type constraint for supported real sample types.
// The canonical definition lives in internal/numeric.
type Float = numeric.Float
