package declinecodes

// docVersion is the revision date of the upstream decline-codes
// documentation the embedded dataset reflects. It changes only when the
// dataset is regenerated against a newer revision.
const docVersion = "2019-08-14"

// GetDocVersion returns the dataset's documentation version, a fixed
// YYYY-MM-DD string for any given build.
func GetDocVersion() string {
	return docVersion
}
