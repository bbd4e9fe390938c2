package iso7816

// GET DATA COMMAND LOGIC (ISO 7816-4):
// The GET DATA command retrieves a data object from the card. Two instruction
// codes exist:
//
// - INS 'CA' (even): P1-P2 encode the data object identifier directly.
// - INS 'CB' (odd, BER-TLV): the data field carries a tag list (tag '5C')
//   naming the requested object, and P1-P2 address the file ('3FFF' = current
//   application). This is the form application dictionaries such as PIV use
//   for their '5FC1xx' data objects.
//
// Both are Case 3/4 commands under T=0: when a tag list is sent, Le cannot be
// sent in the same APDU, so the card answers '61 XX' and the Client retrieves
// the payload with GET RESPONSE.

// currentApplicationFileID is the P1-P2 value addressing the currently
// selected application ('3FFF').
const currentApplicationFileID = 0x3FFF

// NewGetDataCommand creates a GET DATA (BER-TLV, INS 'CB') command requesting
// a single tagged data object from the file addressed by fileID.
func NewGetDataCommand(cla Class, fileID uint16, tag []byte) *CommandAPDU {
	// Data field: tag list template '5C' wrapping the requested tag.
	data := make([]byte, 0, len(tag)+2)
	data = append(data, 0x5C, byte(len(tag)))
	data = append(data, tag...)

	ins, _ := NewInstruction(INS_GET_DATA_BER)

	// T=0 Case 3: no Le alongside Lc. The card signals the response length
	// with '61 XX' and the Client handles the retrieval.
	return NewCommandAPDU(cla, ins, byte(fileID>>8), byte(fileID), data, 0)
}

// GetDataByTag requests a tagged data object from the current application.
func GetDataByTag(cla Class, tag []byte) *CommandAPDU {
	return NewGetDataCommand(cla, currentApplicationFileID, tag)
}
