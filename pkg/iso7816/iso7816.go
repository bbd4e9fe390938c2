/*
Package iso7816 implements data structures and logic to interact with smart cards according to the ISO/IEC 7816 standard.

This package provides the fundamental building blocks for APDU (Application Protocol Data Unit) communication: Command and Response structures, Status Word (SW) analysis, SELECT and GET DATA command builders, and a Client that handles the transport-level retry behaviors of T=0 cards.

# Fundamentals

The communication with a smart card is strictly synchronous:
 1. The Host sends a Command APDU (Header + Optional Body).
 2. The Card processes it and returns a Response APDU (Optional Body + Trailer SW1/SW2).

# Status Words

Every response ends with a 2-byte Status Word (SW).
  - 0x9000: Success (OK).
  - 0x61XX: Success, but response data is still available (XX bytes).
  - 0x6CXX: Error, wrong length expectation (XX is the correct length).
  - Other: Various error conditions.

# Application Selection and Data Objects

Card applications are opened with SELECT (INS 'A4') by their AID, and their data objects are retrieved with GET DATA (INS 'CB', BER-TLV form) using a '5C' tag list. Both flows may span multiple physical transactions under T=0 (GET RESPONSE retrieval, length correction); the Client records the whole conversation as a Trace, and result wrappers evaluate the final outcome.

# Usage Example: Reading a Data Object

	client := iso7816.NewClient(card)
	cls, _ := iso7816.NewClass(0x00)

	trace, err := client.Send(iso7816.GetDataByTag(cls, []byte{0x5F, 0xC1, 0x05}))
	if err != nil {
	    log.Fatal(err)
	}

	res, err := iso7816.NewGetDataResult(trace)
	if err != nil {
	    log.Fatal(err)
	}

	if res.IsSuccess() {
	    fmt.Printf("Object: %X\n", res.Data())
	}

	// Full human-readable report for debugging
	fmt.Println(res.Describe())
*/
package iso7816
