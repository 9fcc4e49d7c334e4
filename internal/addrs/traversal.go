// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package addrs

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
)

// StepsTraversal builds an HCL traversal expression from the given sequence
// of identifier segments, with the first segment as the traversal root and
// each subsequent segment as an attribute access.
//
// The result is an unquoted chained identifier expression such as
// module.compute.aws_instance.web, suitable for use as the value of the
// "from" and "to" arguments of a moved block.
//
// It is a contract violation to call this with no segments or with any
// empty segment; callers are expected to have validated their input, so
// such a call returns an error rather than producing a nonsense address.
func StepsTraversal(steps ...string) (hcl.Traversal, error) {
	if len(steps) == 0 {
		return nil, fmt.Errorf("cannot build a traversal with no steps")
	}
	for i, step := range steps {
		if step == "" {
			return nil, fmt.Errorf("traversal step %d is empty in %q", i, strings.Join(steps, "."))
		}
	}

	traversal := make(hcl.Traversal, 0, len(steps))
	traversal = append(traversal, hcl.TraverseRoot{Name: steps[0]})
	for _, step := range steps[1:] {
		traversal = append(traversal, hcl.TraverseAttr{Name: step})
	}
	return traversal, nil
}
