package piv

import (
	"errors"
	"fmt"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"

	"github.com/gregLibert/asn1-explorer/pkg/iso7816"
)

// ErrObjectNotFound reports that the card does not hold the requested data
// object (status 6A82), typically an empty certificate slot.
var ErrObjectNotFound = errors.New("data object not found on card")

// Client drives the PIV application over an ISO 7816 connection.
type Client struct {
	card   *iso7816.Client
	cls    iso7816.Class
	logger log.Logger
}

// NewClient creates a PIV client over a physical card connection. A nil
// logger disables diagnostics.
func NewClient(card iso7816.Transmitter, logger log.Logger) *Client {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	cls, _ := iso7816.NewClass(0x00)
	return &Client{
		card:   iso7816.NewClient(card),
		cls:    cls,
		logger: logger,
	}
}

// SelectApplication selects the PIV application by its AID. It returns the
// parsed application property template when the card provides a conforming
// one, and nil properties (without error) when it does not.
func (c *Client) SelectApplication() (*ApplicationProperties, error) {
	level.Debug(c.logger).Log("msg", "selecting PIV application", "aid", fmt.Sprintf("%X", AID))

	trace, err := c.card.Send(iso7816.SelectByAID(c.cls, AID))
	if err != nil {
		return nil, fmt.Errorf("transmission failed: %w", err)
	}

	if !trace.IsSuccess() {
		return nil, fmt.Errorf("PIV application selection failed: %s", trace.Last().Response.Status.Verbose())
	}

	props, err := ParseApplicationProperties(trace.Last().Response.Data)
	if err != nil {
		// Non-conforming SELECT responses do not block certificate reads.
		level.Debug(c.logger).Log("msg", "application property template not parsed", "err", err)
		return nil, nil
	}

	return props, nil
}

// ReadCertificate retrieves the DER certificate stored in a key slot. The
// caller gets the raw certificate bytes with the card envelope removed.
func (c *Client) ReadCertificate(slot Slot) ([]byte, error) {
	tag, err := slot.ObjectTag()
	if err != nil {
		return nil, err
	}

	level.Debug(c.logger).Log("msg", "reading certificate object", "slot", slot.String(), "tag", fmt.Sprintf("%X", tag))

	trace, err := c.card.Send(iso7816.GetDataByTag(c.cls, tag))
	if err != nil {
		return nil, fmt.Errorf("transmission failed: %w", err)
	}

	status := trace.Last().Response.Status
	if status == iso7816.SW_ERR_FILE_NOT_FOUND {
		return nil, fmt.Errorf("slot %s: %w", slot, ErrObjectNotFound)
	}
	if !trace.IsSuccess() {
		return nil, fmt.Errorf("GET DATA failed for slot %s: %s", slot, status.Verbose())
	}

	result, err := iso7816.NewGetDataResult(trace)
	if err != nil {
		return nil, err
	}

	obj, err := ParseCertificateObject(result.Data())
	if err != nil {
		return nil, fmt.Errorf("unwrapping certificate object: %w", err)
	}
	if obj.IsCompressed() {
		return nil, fmt.Errorf("slot %s: compressed certificates are not supported", slot)
	}

	return obj.Certificate, nil
}
