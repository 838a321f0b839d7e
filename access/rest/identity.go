package rest

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gocraft/web"

	"github.com/Snapper-Future-Tech/Fabric-sdk/csp"
	"github.com/Snapper-Future-Tech/Fabric-sdk/identity"
	"github.com/Snapper-Future-Tech/Fabric-sdk/util"
)

type identityInfo struct {
	Scheme int    `json:"scheme"`
	SKI    string `json:"ski"`
	PubKey string `json:"pubKey"`
}

type subjectReq struct {
	Subject string `json:"subject"`
}

type signReq struct {
	Msg string `json:"msg"`
}

type verifyReq struct {
	Msg       string `json:"msg"`
	Signature string `json:"signature"`
}

func (*serverREST) GetIdentity(rw web.ResponseWriter, req *web.Request) {
	rw.WriteHeader(http.StatusOK)
	encoder := json.NewEncoder(rw)

	pubKey := identity.GetLocalPubKey()
	if pubKey == nil {
		encoder.Encode(FormatQueryResResult(RetCodeInternal, "identity not initialized", nil))
		return
	}

	pem, err := pubKey.Bytes()
	if err != nil {
		encoder.Encode(FormatQueryResResult(RetCodeInternal, err.Error(), nil))
		return
	}

	info := &identityInfo{
		Scheme: identity.LocalScheme(),
		SKI:    util.ByteToHex(pubKey.SKI()),
		PubKey: string(pem),
	}
	encoder.Encode(FormatQueryResResult(RetCodeOK, "", info))
}

func (*serverREST) GenCSR(rw web.ResponseWriter, req *web.Request) {
	rw.WriteHeader(http.StatusOK)
	encoder := json.NewEncoder(rw)

	subject, ok := readSubject(req, encoder)
	if !ok {
		return
	}

	priKey := identity.GetLocalPrivKey()
	if priKey == nil {
		encoder.Encode(FormatQueryResResult(RetCodeInternal, "identity not initialized", nil))
		return
	}

	csrPEM, err := priKey.GenerateCSR(subject, nil)
	if err != nil {
		restLog.Errorf(LOGTABLE_REST, "CSR generation failed: %s", err.Error())
		encoder.Encode(FormatQueryResResult(RetCodeInternal, err.Error(), nil))
		return
	}

	encoder.Encode(FormatQueryResResult(RetCodeOK, "", string(csrPEM)))
}

func (*serverREST) GenSelfSignedCert(rw web.ResponseWriter, req *web.Request) {
	rw.WriteHeader(http.StatusOK)
	encoder := json.NewEncoder(rw)

	subject, ok := readSubject(req, encoder)
	if !ok {
		return
	}

	priKey := identity.GetLocalPrivKey()
	if priKey == nil {
		encoder.Encode(FormatQueryResResult(RetCodeInternal, "identity not initialized", nil))
		return
	}

	certPEM, err := priKey.GenerateSelfSignedCert(subject)
	if err != nil {
		restLog.Errorf(LOGTABLE_REST, "cert generation failed: %s", err.Error())
		encoder.Encode(FormatQueryResResult(RetCodeInternal, err.Error(), nil))
		return
	}

	encoder.Encode(FormatQueryResResult(RetCodeOK, "", string(certPEM)))
}

func (*serverREST) SignMsg(rw web.ResponseWriter, req *web.Request) {
	rw.WriteHeader(http.StatusOK)
	encoder := json.NewEncoder(rw)

	reqBody, _ := io.ReadAll(req.Body)
	var body signReq
	err := json.Unmarshal(reqBody, &body)
	if err != nil {
		encoder.Encode(FormatQueryResResult(RetCodeBadParam, err.Error(), nil))
		return
	}

	msg, err := util.DecodeBase64(body.Msg)
	if err != nil {
		encoder.Encode(FormatQueryResResult(RetCodeBadParam, err.Error(), nil))
		return
	}

	signature, err := identity.Sign(msg)
	if err != nil {
		encoder.Encode(FormatQueryResResult(RetCodeInternal, err.Error(), nil))
		return
	}

	encoder.Encode(FormatQueryResResult(RetCodeOK, "", util.EncodeBase64(signature)))
}

func (*serverREST) VerifyMsg(rw web.ResponseWriter, req *web.Request) {
	rw.WriteHeader(http.StatusOK)
	encoder := json.NewEncoder(rw)

	reqBody, _ := io.ReadAll(req.Body)
	var body verifyReq
	err := json.Unmarshal(reqBody, &body)
	if err != nil {
		encoder.Encode(FormatQueryResResult(RetCodeBadParam, err.Error(), nil))
		return
	}

	msg, err := util.DecodeBase64(body.Msg)
	if err != nil {
		encoder.Encode(FormatQueryResResult(RetCodeBadParam, err.Error(), nil))
		return
	}

	signature, err := util.DecodeBase64(body.Signature)
	if err != nil {
		encoder.Encode(FormatQueryResResult(RetCodeBadParam, err.Error(), nil))
		return
	}

	valid, err := identity.Verify(identity.GetLocalPubKey(), signature, msg)
	if err != nil {
		encoder.Encode(FormatQueryResResult(RetCodeInternal, err.Error(), nil))
		return
	}

	encoder.Encode(FormatQueryResResult(RetCodeOK, "", valid))
}

func readSubject(req *web.Request, encoder *json.Encoder) (string, bool) {
	reqBody, _ := io.ReadAll(req.Body)
	var body subjectReq
	if len(reqBody) > 0 {
		err := json.Unmarshal(reqBody, &body)
		if err != nil {
			encoder.Encode(FormatQueryResResult(RetCodeBadParam, err.Error(), nil))
			return "", false
		}
	}
	if body.Subject == "" {
		body.Subject = csp.DefaultSelfSignedSubject
	}
	return body.Subject, true
}
