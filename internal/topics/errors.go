//    CaseTopics
//    Copyright: Lexicon Labs 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import "fmt"

// ConfigurationError - the requested model shape cannot be fit to this matrix
type ConfigurationError struct {
	Topics     int
	Vocabulary int
	Reason     string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("bad model configuration (topics=%d, vocabulary=%d): %s", e.Topics, e.Vocabulary, e.Reason)
}

// EmptyInputError - a zero-row or zero-column matrix was supplied for fitting
type EmptyInputError struct {
	Rows int
	Cols int
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("cannot fit a %dx%d document-term matrix", e.Rows, e.Cols)
}

// IndexOutOfRangeError - a topic index outside [0, topics)
type IndexOutOfRangeError struct {
	Index  int
	Topics int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("topic index %d outside [0, %d)", e.Index, e.Topics)
}

// LengthMismatchError - a label sequence disagrees with the matrix dimension it annotates
type LengthMismatchError struct {
	What string
	Want int
	Got  int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("%s length %d does not match matrix dimension %d", e.What, e.Got, e.Want)
}
