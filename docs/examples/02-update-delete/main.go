package main

import (
	"fmt"
	"log"

	wfst "github.com/beetlebugorg/wfst/pkg/v1"
)

func main() {
	opts := wfst.TransactionOptions{
		Ns:    "topp",
		Layer: "roads",
		NsAssignments: map[string]string{
			"topp": "http://www.openplans.org/topp",
		},
	}

	// Rename road 5 and clear its surface field; Unset leaves the
	// classification reference untouched server-side.
	opts.Properties = map[string]any{
		"name":           "Main Street",
		"surface":        nil,
		"classification": wfst.Unset,
	}

	update, err := wfst.Update([]wfst.Feature{{ID: "5"}}, opts)
	if err != nil {
		log.Fatal(err)
	}

	// Delete road 9 in the same transaction
	opts.Properties = nil
	del, err := wfst.Delete([]wfst.Feature{{ID: "9"}}, opts)
	if err != nil {
		log.Fatal(err)
	}

	doc, err := wfst.Transaction([]string{update, del}, opts)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(doc)
}
