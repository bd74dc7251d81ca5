package scenarioapi

import "fmt"

// An Explainer collects information about how a lookup was performed and where the found
// value came from.
type Explainer interface {
	fmt.Stringer

	// PushLookup starts the explanation of a lookup of the given key
	PushLookup(key string)

	// PushSource starts the explanation of a search in the given source
	PushSource(category Category, source string)

	// PushAlias starts the explanation of an alias from a fully qualified parameter to a data key
	PushAlias(param, dataKey string)

	// Pop ends the current explanation branch
	Pop()

	// AcceptFound records that the key was found with the given value
	AcceptFound(key string, value Value)

	// AcceptNotFound records that the key was not found
	AcceptNotFound(key string)

	// AcceptSourceNotFound records that the current source does not exist
	AcceptSourceNotFound()

	// AcceptText adds a free form text to the current branch
	AcceptText(text string)
}
