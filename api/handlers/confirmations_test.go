package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/suite"

	"github.com/veilpay/veilpay-signing/api/handlers"
)

type ConfirmationsHandlerTestSuite struct {
	suite.Suite
}

func TestRunConfirmationsHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ConfirmationsHandlerTestSuite))
}

func (s *ConfirmationsHandlerTestSuite) Test_HandleRequest_InvalidChainID() {
	handler := handlers.NewConfirmationsHandler(map[uint64]map[uint64]uint64{})

	req := httptest.NewRequest(http.MethodGet, "/v1/chains/714/confirmations", nil)
	req = mux.SetURLVars(req, map[string]string{
		"chainId": "invalid",
	})

	recorder := httptest.NewRecorder()

	handler.HandleRequest(recorder, req)

	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *ConfirmationsHandlerTestSuite) Test_HandleRequest_ChainNotFound() {
	handler := handlers.NewConfirmationsHandler(map[uint64]map[uint64]uint64{})

	req := httptest.NewRequest(http.MethodGet, "/v1/chains/714/confirmations", nil)
	req = mux.SetURLVars(req, map[string]string{
		"chainId": "714",
	})

	recorder := httptest.NewRecorder()

	handler.HandleRequest(recorder, req)

	s.Equal(http.StatusNotFound, recorder.Code)
}

func (s *ConfirmationsHandlerTestSuite) Test_HandleRequest_ValidConfirmations() {
	expectedConfirmations := map[uint64]uint64{
		1000:  1,
		5000:  2,
		10000: 3,
	}

	confirmations := make(map[uint64]map[uint64]uint64)
	confirmations[714] = expectedConfirmations
	handler := handlers.NewConfirmationsHandler(confirmations)

	req := httptest.NewRequest(http.MethodGet, "/v1/chains/714/confirmations", nil)
	req = mux.SetURLVars(req, map[string]string{
		"chainId": "714",
	})

	recorder := httptest.NewRecorder()

	handler.HandleRequest(recorder, req)

	s.Equal(http.StatusOK, recorder.Code)

	data, err := io.ReadAll(recorder.Body)
	s.Nil(err)

	s.Equal(string(data), "{\"1000\":1,\"10000\":3,\"5000\":2}")
}
