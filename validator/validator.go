package validator

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

type transactionValidator struct{}

// NewTransactionValidator creates a new transaction validator instance
func NewTransactionValidator() *transactionValidator {
	return &transactionValidator{}
}

// Validate checks the request against the signer address. See CheckTransaction
func (tv *transactionValidator) Validate(request TransactionRequest, signer common.Address) error {
	return CheckTransaction(request, signer)
}

// IsInterfaceNil returns true if there is no value under the interface
func (tv *transactionValidator) IsInterfaceNil() bool {
	return tv == nil
}

// CheckTransaction verifies the structural preconditions of a transaction request before it is signed.
// Unknown fields are reported first, then a from field that does not match the signer. The request is not modified
func CheckTransaction(request TransactionRequest, signer common.Address) error {
	err := checkUnknownFields(request)
	if err != nil {
		return err
	}

	return checkSender(request, signer)
}

func checkUnknownFields(request TransactionRequest) error {
	unknown := ""
	for field := range request {
		if IsSupportedField(field) {
			continue
		}
		// map iteration is random, report the smallest name so the outcome is stable
		if len(unknown) == 0 || field < unknown {
			unknown = field
		}
	}

	if len(unknown) > 0 {
		return &UnknownFieldError{Field: unknown}
	}

	return nil
}

func checkSender(request TransactionRequest, signer common.Address) error {
	if !request.Has(FieldFrom) {
		return nil
	}

	asserted, ok := addressFromValue(request[FieldFrom])
	if ok && asserted == signer {
		return nil
	}

	return &SenderMismatchError{
		Asserted: fmt.Sprintf("%v", request[FieldFrom]),
		Signer:   signer.Hex(),
	}
}

func addressFromValue(value interface{}) (common.Address, bool) {
	switch v := value.(type) {
	case common.Address:
		return v, true
	case *common.Address:
		if v == nil {
			return common.Address{}, false
		}
		return *v, true
	case []byte:
		if len(v) != common.AddressLength {
			return common.Address{}, false
		}
		return common.BytesToAddress(v), true
	case string:
		hexAddress := strings.TrimSpace(v)
		if !common.IsHexAddress(hexAddress) {
			return common.Address{}, false
		}
		return common.HexToAddress(hexAddress), true
	}

	return common.Address{}, false
}
