package metrics

import "strings"

// Paths that end in a caller supplied identifier
var pathTemplates = []struct {
	prefix   string
	template string
}{
	{prefix: "/disbursement/v1_0/deposit/", template: "/disbursement/v1_0/deposit/{referenceId}"},
	{prefix: "/disbursement/v1_0/refund/", template: "/disbursement/v1_0/refund/{referenceId}"},
	{prefix: "/disbursement/v1_0/transfer/", template: "/disbursement/v1_0/transfer/{referenceId}"},
	{prefix: "/disbursement/v1_0/account/balance/", template: "/disbursement/v1_0/account/balance/{currency}"},
}

const accountHolderPrefix = "/disbursement/v1_0/accountholder/"

// normalizePath collapses identifiers in MoMo paths to keep label cardinality bounded.
func normalizePath(path string) string {
	if rest, ok := strings.CutPrefix(path, accountHolderPrefix); ok {
		if parts := strings.Split(rest, "/"); len(parts) == 3 {
			return accountHolderPrefix + parts[0] + "/{accountHolderId}/" + parts[2]
		}
	}

	for _, t := range pathTemplates {
		if rest, ok := strings.CutPrefix(path, t.prefix); ok && rest != "" && !strings.Contains(rest, "/") {
			return t.template
		}
	}
	return path
}
