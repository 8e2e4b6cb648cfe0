package main

import (
	"github.com/lehigh-university-libraries/csv2bib/cmd"

	// Register format plugins
	_ "github.com/lehigh-university-libraries/csv2bib/format/biblatex"
	_ "github.com/lehigh-university-libraries/csv2bib/format/bibtex"
	_ "github.com/lehigh-university-libraries/csv2bib/format/csv"
	_ "github.com/lehigh-university-libraries/csv2bib/format/json"
)

func main() {
	cmd.Execute()
}
