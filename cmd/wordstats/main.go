/*
 * Copyright (C) 2026 Foldkit Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// wordstats joins a fixed word list and reports its total character count,
// exercising both fold variants provided by the reduction package.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"

	"github.com/foldkit/foldkit/reduction"
)

func main() {
	var logger logr.Logger = stdr.New(log.New(os.Stderr, "", log.LstdFlags))

	words := []string{"C++", "is", "insane"}
	joined, err := reduction.Join(words, "-")
	if err != nil {
		logger.Error(err, "could not join words")
		os.Exit(1)
	}
	fmt.Printf("%v | total chars: %v\n", joined, reduction.SumLengths(words))
}
