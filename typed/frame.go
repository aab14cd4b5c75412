package typed

// AudioFrame is a record of two f64 samples, fixed serialized size 16
// bytes: left at offset 0, right at offset 8.
type AudioFrame struct {
	Left  float64
	Right float64
}

func (f AudioFrame) ByteSize() int32 { return 16 }

func (f AudioFrame) WriteBytes(buf []byte, off int32) {
	putF64(buf, off, f.Left)
	putF64(buf, off+8, f.Right)
}

// ReadAudioFrame is the StorableReader for AudioFrame.
func ReadAudioFrame(buf []byte, off int32) AudioFrame {
	return AudioFrame{Left: getF64(buf, off), Right: getF64(buf, off+8)}
}

const audioFrameSize = 16
