// args.go

package main

import (
	"fmt"
	"strconv"
)

// parseCountedArgs reads the classic "n k1 .. kn" argument convention: the
// first token declares the element count and exactly that many keys must
// follow. n <= 0 yields an empty slice and no error, since an empty input
// is valid for every command that uses this form.
func parseCountedArgs(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("invalid arguments: array size must be specified")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, fmt.Errorf("invalid array size: %s", args[0])
	}
	if n <= 0 {
		return nil, nil
	}
	if len(args) != n+1 {
		return nil, fmt.Errorf(
			"invalid arguments: array was expected to have %d element(s), but got %d instead",
			n, len(args)-1,
		)
	}
	keys := make([]int, n)
	for i, raw := range args[1:] {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid value at index %d: %s", i, raw)
		}
		keys[i] = v
	}
	return keys, nil
}
