package iso7816

import (
	"fmt"
	"strings"
)

// GetDataResult represents the outcome of a GET DATA command execution.
// It wraps the transaction trace to expose the retrieved object payload and
// a formatted human-readable report (Describe).
type GetDataResult struct {
	Trace
}

// NewGetDataResult creates a GetDataResult from a raw transaction trace.
// It validates that the trace is not empty and that the logical operation
// started with a GET DATA command (INS 0xCA or 0xCB).
func NewGetDataResult(t Trace) (*GetDataResult, error) {
	if len(t) == 0 {
		return nil, fmt.Errorf("cannot create result from empty trace")
	}

	ins := t[0].Command.Instruction.Raw
	if ins != INS_GET_DATA && ins != INS_GET_DATA_BER {
		return nil, fmt.Errorf("trace must start with GET DATA command (got %02X)", ins)
	}

	return &GetDataResult{Trace: t}, nil
}

// Data returns the payload of the final response in the trace.
func (r *GetDataResult) Data() []byte {
	last := r.Last()
	if last == nil || last.Response == nil {
		return nil
	}
	return last.Response.Data
}

// requestedTag extracts the tag named in the command's '5C' tag list, if the
// BER-TLV form was used.
func (r *GetDataResult) requestedTag() []byte {
	cmd := r.Trace[0].Command
	if cmd.Instruction.Raw != INS_GET_DATA_BER {
		return nil
	}
	data := cmd.Data
	if len(data) < 2 || data[0] != 0x5C || int(data[1]) != len(data)-2 {
		return nil
	}
	return data[2:]
}

// Describe generates a detailed, ASCII-formatted report of the retrieval.
func (r *GetDataResult) Describe() string {
	var sb strings.Builder

	sb.WriteString("=== GET DATA COMMAND REPORT ===\n")

	tx0 := r.Trace[0]
	cmd := tx0.Command

	sb.WriteString("[1] Command: GET DATA (Initial Request)\n")
	sb.WriteString(fmt.Sprintf("    + File:    %02X%02X\n", cmd.P1, cmd.P2))

	if tag := r.requestedTag(); tag != nil {
		sb.WriteString(fmt.Sprintf("    + Object:  Tag %X\n", tag))
	} else if len(cmd.Data) > 0 {
		sb.WriteString(fmt.Sprintf("    + Data:    %X\n", cmd.Data))
	}

	status := tx0.Response.Status
	resultMsg := "[OK]"
	if !status.IsSuccess() {
		resultMsg = "[!!]"
	}
	sb.WriteString(fmt.Sprintf("    + Result:  [%04X] %s %s\n", uint16(status), resultMsg, status.Verbose()))

	if len(r.Trace) > 1 {
		sb.WriteString(fmt.Sprintf("\n[2] Protocol: Auto-handling (Sequence of %d steps)\n", len(r.Trace)))
		sb.WriteString(fmt.Sprintf("    + Result:  [%04X] Final Status\n", uint16(r.Last().Response.Status)))
	}

	sb.WriteString("\n[=] FINAL OUTCOME:\n")
	payload := r.Data()
	if len(payload) == 0 {
		sb.WriteString("    - No Data returned.\n")
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("    - Payload: %d bytes\n", len(payload)))
	sb.WriteString(fmt.Sprintf("      Dump:    %X\n", payload))

	return sb.String()
}
