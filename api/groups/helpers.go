package groups

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	apiErrors "github.com/klever-io/evm-wallet-checker/api/errors"
	"github.com/klever-io/evm-wallet-checker/api/shared"
	"github.com/klever-io/evm-wallet-checker/provider"
	"github.com/klever-io/evm-wallet-checker/transfer"
	"github.com/klever-io/evm-wallet-checker/validator"
)

var requestErrors = []error{
	validator.ErrUnknownField,
	validator.ErrSenderMismatch,
	transfer.ErrInvalidTransactionField,
	provider.ErrInsufficientFunds,
	provider.ErrInvalidTransactionHash,
	provider.ErrNonceTooLow,
}

// bindTransactionRequest decodes the JSON body keeping numbers as json.Number so large amounts are not rounded
func bindTransactionRequest(c *gin.Context) (validator.TransactionRequest, error) {
	request := validator.TransactionRequest{}

	decoder := json.NewDecoder(c.Request.Body)
	decoder.UseNumber()
	err := decoder.Decode(&request)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apiErrors.ErrInvalidJSONRequest, err.Error())
	}

	return request, nil
}

func respondWithData(c *gin.Context, data interface{}) {
	c.JSON(
		http.StatusOK,
		shared.GenericAPIResponse{
			Data:  data,
			Error: "",
			Code:  shared.ReturnCodeSuccess,
		},
	)
}

func respondWithError(c *gin.Context, err error, baseErr error) {
	status, code := classifyError(err)
	c.JSON(
		status,
		shared.GenericAPIResponse{
			Data:  nil,
			Error: fmt.Sprintf("%s: %s", baseErr.Error(), err.Error()),
			Code:  code,
		},
	)
}

func classifyError(err error) (int, shared.ReturnCode) {
	if errors.Is(err, provider.ErrTransactionNotFound) {
		return http.StatusNotFound, shared.ReturnCodeNotFound
	}
	if errors.Is(err, apiErrors.ErrInvalidJSONRequest) {
		return http.StatusBadRequest, shared.ReturnCodeRequestError
	}
	for _, requestErr := range requestErrors {
		if errors.Is(err, requestErr) {
			return http.StatusBadRequest, shared.ReturnCodeRequestError
		}
	}

	return http.StatusInternalServerError, shared.ReturnCodeInternalError
}
