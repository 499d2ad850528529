package cpu

// The stack lives in page one. SP wraps in both directions without any
// overflow detection, as on the real chip.

func (c *CPU) push(mem Bus, data byte) {
	c.write(mem, StackBase+uint16(c.SP), data)
	c.SP--
}

func (c *CPU) pull(mem Bus) byte {
	c.SP++
	return mem.Read(StackBase + uint16(c.SP))
}

// PushWord pushes v high byte first so that it pulls back little-endian.
func (c *CPU) PushWord(mem Bus, v uint16) {
	c.push(mem, byte(v>>8))
	c.push(mem, byte(v))
}

func (c *CPU) pullWord(mem Bus) uint16 {
	lo := c.pull(mem)
	hi := c.pull(mem)
	return makeAddress(lo, hi)
}

// PushStatus pushes the packed status register.
func (c *CPU) PushStatus(mem Bus) {
	c.push(mem, c.P.Byte())
}

func (c *CPU) pullStatus(mem Bus) {
	c.P.SetByte(c.pull(mem))
}
