package iso7816

import "fmt"

// Names for the fixed status word constants. Dynamic ranges (61XX, 6CXX,
// triggering and counter forms) are rendered by Verbose directly and never
// reach this table.
var statusWordNames = map[StatusWord]string{
	SW_NO_ERROR: "SW_NO_ERROR",

	SW_WARN_NO_INFO:              "SW_WARN_NO_INFO",
	SW_WARN_TRIGGERING_BY_CARD:   "SW_WARN_TRIGGERING_BY_CARD",
	SW_WARN_DATA_CORRUPTED:       "SW_WARN_DATA_CORRUPTED",
	SW_WARN_EOF_REACHED:          "SW_WARN_EOF_REACHED",
	SW_WARN_FILE_DEACTIVATED:     "SW_WARN_FILE_DEACTIVATED",
	SW_WARN_FCI_BAD_FORMAT:       "SW_WARN_FCI_BAD_FORMAT",
	SW_WARN_TERMINATION_STATE:    "SW_WARN_TERMINATION_STATE",
	SW_WARN_NO_INPUT_FROM_SENSOR: "SW_WARN_NO_INPUT_FROM_SENSOR",

	SW_WARN_NV_CHANGED_NO_INFO: "SW_WARN_NV_CHANGED_NO_INFO",
	SW_WARN_FILE_FILLED:        "SW_WARN_FILE_FILLED",
	SW_WARN_COUNTER_0:          "SW_WARN_COUNTER_0",

	SW_ERR_EXEC_NO_INFO:            "SW_ERR_EXEC_NO_INFO",
	SW_ERR_EXEC_IMMEDIATE_RESPONSE: "SW_ERR_EXEC_IMMEDIATE_RESPONSE",
	SW_ERR_EXEC_TRIGGERING_BY_CARD: "SW_ERR_EXEC_TRIGGERING_BY_CARD",

	SW_ERR_NV_CHANGED_NO_INFO: "SW_ERR_NV_CHANGED_NO_INFO",
	SW_ERR_MEMORY_FAILURE:     "SW_ERR_MEMORY_FAILURE",
	SW_ERR_SECURITY_ISSUE:     "SW_ERR_SECURITY_ISSUE",

	SW_ERR_WRONG_LENGTH:              "SW_ERR_WRONG_LENGTH",
	SW_ERR_CHECKING_NO_INFO:          "SW_ERR_CHECKING_NO_INFO",
	SW_ERR_LOGICAL_CHANNEL_NOT_SUPP:  "SW_ERR_LOGICAL_CHANNEL_NOT_SUPP",
	SW_ERR_SECURE_MESSAGING_NOT_SUPP: "SW_ERR_SECURE_MESSAGING_NOT_SUPP",
	SW_ERR_LAST_COMMAND_EXPECTED:     "SW_ERR_LAST_COMMAND_EXPECTED",
	SW_ERR_CHAINING_NOT_SUPP:         "SW_ERR_CHAINING_NOT_SUPP",

	SW_ERR_CMD_NOT_ALLOWED_NO_INFO: "SW_ERR_CMD_NOT_ALLOWED_NO_INFO",
	SW_ERR_CMD_INCOMPATIBLE_FILE:   "SW_ERR_CMD_INCOMPATIBLE_FILE",
	SW_ERR_SECURITY_STATUS_NOT_SAT: "SW_ERR_SECURITY_STATUS_NOT_SAT",
	SW_ERR_AUTH_METHOD_BLOCKED:     "SW_ERR_AUTH_METHOD_BLOCKED",
	SW_ERR_REF_DATA_NOT_USABLE:     "SW_ERR_REF_DATA_NOT_USABLE",
	SW_ERR_COND_OF_USE_NOT_SAT:     "SW_ERR_COND_OF_USE_NOT_SAT",
	SW_ERR_CMD_NOT_ALLOWED_NO_EF:   "SW_ERR_CMD_NOT_ALLOWED_NO_EF",
	SW_ERR_SM_OBJ_MISSING:          "SW_ERR_SM_OBJ_MISSING",
	SW_ERR_SM_OBJ_INCORRECT:        "SW_ERR_SM_OBJ_INCORRECT",

	SW_ERR_WRONG_PARAMS_NO_INFO:   "SW_ERR_WRONG_PARAMS_NO_INFO",
	SW_ERR_INCORRECT_PARAMS_DATA:  "SW_ERR_INCORRECT_PARAMS_DATA",
	SW_ERR_FUNC_NOT_SUPPORTED:     "SW_ERR_FUNC_NOT_SUPPORTED",
	SW_ERR_FILE_NOT_FOUND:         "SW_ERR_FILE_NOT_FOUND",
	SW_ERR_RECORD_NOT_FOUND:       "SW_ERR_RECORD_NOT_FOUND",
	SW_ERR_NOT_ENOUGH_MEMORY:      "SW_ERR_NOT_ENOUGH_MEMORY",
	SW_ERR_NC_INCONSISTENT_TLV:    "SW_ERR_NC_INCONSISTENT_TLV",
	SW_ERR_INCORRECT_PARAMS_P1P2:  "SW_ERR_INCORRECT_PARAMS_P1P2",
	SW_ERR_NC_INCONSISTENT_P1P2:   "SW_ERR_NC_INCONSISTENT_P1P2",
	SW_ERR_REF_DATA_NOT_FOUND:     "SW_ERR_REF_DATA_NOT_FOUND",
	SW_ERR_FILE_ALREADY_EXISTS:    "SW_ERR_FILE_ALREADY_EXISTS",
	SW_ERR_DF_NAME_ALREADY_EXISTS: "SW_ERR_DF_NAME_ALREADY_EXISTS",

	SW_ERR_WRONG_P1P2:        "SW_ERR_WRONG_P1P2",
	SW_ERR_INS_INVALID:       "SW_ERR_INS_INVALID",
	SW_ERR_CLA_NOT_SUPPORTED: "SW_ERR_CLA_NOT_SUPPORTED",
	SW_ERR_UNKNOWN:           "SW_ERR_UNKNOWN",
}

// String returns the constant name of a known status word, or a generic
// "StatusWord(XXXX)" form for values without a dedicated constant.
func (sw StatusWord) String() string {
	if name, ok := statusWordNames[sw]; ok {
		return name
	}
	return fmt.Sprintf("StatusWord(%04X)", uint16(sw))
}
