package rest

type RetCode string

const (
	RetCodeOK       RetCode = "0000"
	RetCodeBadParam RetCode = "0400"
	RetCodeInternal RetCode = "0500"
)

type RestQueryResult struct {
	RestBase
	Data interface{} `json:"data,omitempty"`
}

type RestBase struct {
	Code    RetCode     `json:"code,omitempty"`
	Message interface{} `json:"msg,omitempty"`
}

func FormatQueryResResult(code RetCode, message interface{}, data interface{}) *RestQueryResult {
	res := &RestQueryResult{}
	res.Code = code
	res.Message = message
	res.Data = data
	return res
}
