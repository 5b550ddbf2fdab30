package app

type ChartErrorCode string

const (
	ChartErrInvalidInput     ChartErrorCode = "INVALID_INPUT"
	ChartErrInvalidPositions ChartErrorCode = "INVALID_POSITIONS"
)

type ChartError struct {
	Code    ChartErrorCode
	Message string
}

func (e *ChartError) Error() string {
	return string(e.Code) + ": " + e.Message
}
