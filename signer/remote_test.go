package signer_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/suite"
	"github.com/veilpay/veilpay-signing/errs"
	"github.com/veilpay/veilpay-signing/signer"
)

type RemoteSignerTestSuite struct {
	suite.Suite

	testServer *httptest.Server
	signature  []byte
	address    string
	status     int
}

func TestRunRemoteSignerTestSuite(t *testing.T) {
	suite.Run(t, new(RemoteSignerTestSuite))
}

func (s *RemoteSignerTestSuite) SetupTest() {
	s.signature = make([]byte, signer.SignatureLength)
	for i := range s.signature {
		s.signature[i] = byte(i)
	}
	s.address = "0x8731d54e9d02c286767d56ac03e8037c07e01e98"
	s.status = http.StatusOK

	s.testServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.status != http.StatusOK {
			w.WriteHeader(s.status)
			return
		}

		switch r.URL.Path {
		case "/v1/sign":
			var req struct {
				KeyID   string `json:"keyId"`
				Message string `json:"message"`
			}
			s.Nil(json.NewDecoder(r.Body).Decode(&req))
			s.Equal("k1", req.KeyID)
			s.Equal(hexutil.Encode([]byte("msg")), req.Message)

			respBytes, _ := json.Marshal(map[string]string{"signature": hexutil.Encode(s.signature)})
			_, _ = w.Write(respBytes)
		case "/v1/keys/k1/address":
			respBytes, _ := json.Marshal(map[string]string{"address": s.address})
			_, _ = w.Write(respBytes)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func (s *RemoteSignerTestSuite) TearDownTest() {
	s.testServer.Close()
}

func (s *RemoteSignerTestSuite) Test_SignMessage_Success() {
	sg := signer.NewRemoteSigner(s.testServer.URL, "k1")

	sig, err := sg.SignMessage(context.Background(), []byte("msg"))
	s.Nil(err)
	s.Equal(s.signature, sig)
}

func (s *RemoteSignerTestSuite) Test_SignMessage_ServiceError() {
	s.status = http.StatusInternalServerError
	sg := signer.NewRemoteSigner(s.testServer.URL, "k1")

	_, err := sg.SignMessage(context.Background(), []byte("msg"))
	s.NotNil(err)

	var serr *errs.SignerError
	s.True(errors.As(err, &serr))
	s.Equal("remote", serr.Backend)
}

func (s *RemoteSignerTestSuite) Test_SignMessage_WrongSignatureLength() {
	s.signature = []byte{1, 2, 3}
	sg := signer.NewRemoteSigner(s.testServer.URL, "k1")

	_, err := sg.SignMessage(context.Background(), []byte("msg"))
	s.NotNil(err)
}

func (s *RemoteSignerTestSuite) Test_Address_Success() {
	sg := signer.NewRemoteSigner(s.testServer.URL, "k1")

	addr, err := sg.Address()
	s.Nil(err)
	s.Equal(s.address, addr)
}

func (s *RemoteSignerTestSuite) Test_Address_Missing() {
	s.address = ""
	sg := signer.NewRemoteSigner(s.testServer.URL, "k1")

	_, err := sg.Address()
	s.True(errors.Is(err, errs.ErrNoAddress))
}
