package fallible

// Unit carries no information. It serves as the value type for containers
// whose success channel has nothing to report, e.g. try.Try[fallible.Unit].
type Unit struct{}

// Nothing is the sole Unit value.
var Nothing = Unit{}
