package pkg

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

func ValidateAccountAddress(address string) error {
	if !common.IsHexAddress(address) {
		return fmt.Errorf("%s is not a valid account address", address)
	}

	return nil
}
