// Copyright © 2019 One Concern

package main

import (
	"github.com/oneconcern/cratemon/cmd/cratemon/cmd"
)

func main() {
	cmd.Execute()
}
