// Command semaphore-identity generates, inspects, signs with, and verifies
// signatures from Semaphore identities from the command line.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vplasencia/semaphore-v4-identity-go/pkg/codec"
	"github.com/vplasencia/semaphore-v4-identity-go/pkg/eddsa"
	"github.com/vplasencia/semaphore-v4-identity-go/pkg/identity"
)

func main() {
	var (
		privateKey = flag.String("private-key", "", "Private key (raw text); omit to generate a fresh random identity")
		importB64  = flag.String("import", "", "Base64-encoded exported identity to import instead of generating one")
		sign       = flag.String("sign", "", "Message text to sign with the identity")
		verify     = flag.String("verify", "", "Message text to verify against --signature and the identity's public key")
		signature  = flag.String("signature", "", "Hex-encoded 64-byte packed signature to verify")
		verbose    = flag.Bool("verbose", false, "Enable debug logging")
	)
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	id, err := buildIdentity(*importB64, *privateKey)
	if err != nil {
		log.Error().Err(err).Msg("could not build identity")
		os.Exit(1)
	}

	packedPub, err := eddsa.PackPublicKey(id.PublicKey())
	if err != nil {
		log.Error().Err(err).Msg("could not pack public key")
		os.Exit(1)
	}

	fmt.Printf("Commitment:   %s\n", id.Commitment().String())
	fmt.Printf("Public key:   %s\n", codec.BytesToHex(packedPub))
	fmt.Printf("Exported key: %s\n", id.Export())

	switch {
	case *sign != "":
		runSign(id, *sign)
	case *verify != "" && *signature != "":
		runVerify(id, *verify, *signature)
	}
}

func buildIdentity(importB64, privateKeyText string) (*identity.Identity, error) {
	if importB64 != "" {
		return identity.Import(importB64)
	}
	if privateKeyText != "" {
		return identity.New([]byte(privateKeyText))
	}
	return identity.New(nil)
}

func runSign(id *identity.Identity, message string) {
	sig, err := id.SignMessage([]byte(message))
	if err != nil {
		log.Error().Err(err).Msg("signing failed")
		os.Exit(1)
	}

	packed, err := eddsa.PackSignature(sig)
	if err != nil {
		log.Error().Err(err).Msg("packing signature failed")
		os.Exit(1)
	}

	fmt.Printf("Signature:    %s\n", codec.BytesToHex(packed))
}

func runVerify(id *identity.Identity, message, signatureHex string) {
	packed, err := codec.HexToBytes(signatureHex)
	if err != nil {
		log.Error().Err(err).Msg("invalid signature hex")
		os.Exit(1)
	}

	sig, err := eddsa.UnpackSignature(packed)
	if err != nil {
		log.Error().Err(err).Msg("invalid packed signature")
		os.Exit(1)
	}

	ok := identity.VerifySignature([]byte(message), sig, id.PublicKey())
	fmt.Printf("Verified:     %t\n", ok)
	if !ok {
		os.Exit(1)
	}
}
