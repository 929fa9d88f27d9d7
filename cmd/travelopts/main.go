// Command travelopts inspects and combines travel option lists.
//
//	travelopts demo
//	travelopts show trips/chicago.yaml
//	travelopts join leg1.yaml leg2.yaml --mode plus
//	travelopts generate --kind frontier -n 10 --seed 7 --out frontier.json
package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("travelopts failed")
		os.Exit(1)
	}
}
