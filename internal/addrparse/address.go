package addrparse

import "errors"

// Mailbox is one parsed entry of an RFC 5322 address-list header (To,
// From, Cc, Bcc, Reply-To, Sender, and their Resent- variants).
type Mailbox struct {
	DisplayName string
	LocalPart   string
	Domain      string
}

// AddressList is the result of parsing one header's worth of addresses: a
// flat mailbox-list, or (for group syntax, "Undisclosed-recipients:;") the
// group's display name with its member mailboxes.
type AddressList struct {
	List  []Mailbox
	Group string
}

var (
	errNotAtom               = errors.New("not an atom")
	errExpectingAngleAddress = errors.New("not an angle-addr")
	errNotAWord              = errors.New("not a word")
	errExpectingColon        = errors.New("expecting :")
	errExpectingSemicolon    = errors.New("expecting ;")
	errExpectingAngleClose   = errors.New("expecting >")
	errExpectingAngleOpen    = errors.New("< expected")
	errQuotedUnclosed        = errors.New("quoted display-name not closed")
)

// ListParser parses the address / mailbox-list / group productions of
// RFC 5322 §3.4, on top of the shared addr-spec Cursor in parse.go.
type ListParser struct {
	Cursor
	AddressList
	current Mailbox
}

// ParseList parses one header's worth of comma-separated mailboxes (To,
// From, Cc, Bcc, Reply-To, Sender) or a single RFC 5322 group.
func ParseList(input []byte) (AddressList, error) {
	p := &ListParser{}
	p.set(input)
	p.next()
	p.skipSpace()
	if err := p.mailbox(); err != nil {
		if err == errExpectingAngleAddress && p.ch == ':' {
			if gerr := p.group(); gerr != nil {
				return p.AddressList, gerr
			}
			return p.AddressList, nil
		}
		return p.AddressList, err
	}
	// mailbox-list continuation: more comma-separated mailboxes.
	for {
		p.skipSpace()
		if p.ch != ',' {
			break
		}
		p.next()
		p.skipSpace()
		if err := p.mailbox(); err != nil {
			break
		}
	}
	return p.AddressList, nil
}

// group = display-name ":" [group-list] ";" [CFWS]
func (p *ListParser) group() error {
	if p.current.DisplayName == "" {
		if err := p.displayName(); err != nil {
			return err
		}
	}
	p.Group = p.current.DisplayName
	p.current.DisplayName = ""
	if p.ch != ':' {
		return errExpectingColon
	}
	p.next()
	_ = p.groupList()
	p.skipSpace()
	if p.ch != ';' {
		return errExpectingSemicolon
	}
	return nil
}

func (p *ListParser) groupList() error {
	p.skipSpace()
	if err := p.mailbox(); err != nil {
		return err
	}
	for {
		p.skipSpace()
		if p.ch != ',' {
			return nil
		}
		p.next()
		p.skipSpace()
		if err := p.mailbox(); err != nil {
			return err
		}
	}
}

// mailbox = name-addr / addr-spec
func (p *ListParser) mailbox() error {
	pos := p.pos
	if err := p.nameAddr(); err != nil {
		if err == errExpectingAngleAddress && p.ch != ':' {
			p.current.DisplayName = ""
			p.pos = pos - 1
			if p.pos > -1 {
				p.ch = p.buf[p.pos]
			}
			if err := p.Cursor.Mailbox(); err != nil {
				return err
			}
			p.addCurrent()
			// Step off the addr-spec's last byte onto the following
			// delimiter, as nameAddr does after consuming '>'.
			p.next()
		} else {
			return err
		}
	}
	return nil
}

func (p *ListParser) addCurrent() {
	p.current.LocalPart = p.Cursor.LocalPart
	p.current.Domain = p.Cursor.Domain
	p.List = append(p.List, p.current)
	p.current = Mailbox{}
}

// name-addr = [display-name] angle-addr
func (p *ListParser) nameAddr() error {
	_ = p.displayName()
	if p.ch != '<' {
		return errExpectingAngleAddress
	}
	if err := p.angleAddr(); err != nil {
		return err
	}
	p.next()
	if p.ch != '>' {
		return errExpectingAngleClose
	}
	p.next() // consume '>' so the caller lands on the following delimiter
	p.addCurrent()
	return nil
}

// angle-addr = [CFWS] "<" addr-spec ">" [CFWS]
func (p *ListParser) angleAddr() error {
	p.skipSpace()
	if p.ch != '<' {
		return errExpectingAngleOpen
	}
	if err := p.Cursor.Mailbox(); err != nil {
		return err
	}
	p.skipSpace()
	return nil
}

// display-name = phrase = 1*word
func (p *ListParser) displayName() error {
	var accept []byte
	defer func() {
		if len(accept) > 0 {
			p.current.DisplayName = string(accept)
		}
	}()
	w, err := p.word()
	if err != nil {
		return err
	}
	accept = append(accept, w...)
	for {
		w, err := p.word()
		if err != nil {
			return nil
		}
		accept = append(accept, ' ')
		accept = append(accept, w...)
	}
}

func (p *ListParser) quotedDisplayName() (string, error) {
	if p.ch != '"' {
		return "", errQuotedUnclosed
	}
	if err := p.Cursor.qcontent(); err != nil {
		return "", err
	}
	if p.ch != '"' {
		return "", errQuotedUnclosed
	}
	s := p.Cursor.accept.String()
	p.Cursor.accept.Reset()
	p.next()
	return s, nil
}

// word = atom / quoted-string
func (p *ListParser) word() (string, error) {
	if p.ch == '"' {
		return p.quotedDisplayName()
	}
	if p.isAtext(p.ch) || p.ch == ' ' || p.ch == '\t' {
		return p.atomWord()
	}
	return "", errNotAWord
}

func (p *ListParser) atomWord() (string, error) {
	p.skipSpace()
	if !p.isAtext(p.ch) {
		return "", errNotAtom
	}
	var accept []byte
	for {
		if p.isAtext(p.ch) {
			accept = append(accept, p.ch)
			p.next()
			continue
		}
		skipped := p.skipSpace()
		if !p.isAtext(p.ch) {
			return string(accept), nil
		}
		if skipped > 0 {
			accept = append(accept, ' ')
		}
		accept = append(accept, p.ch)
		p.next()
	}
}

func (p *ListParser) skipSpace() int {
	var skipped int
	for p.ch == ' ' || p.ch == 9 {
		p.next()
		skipped++
	}
	return skipped
}
