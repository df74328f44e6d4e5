package headless

import (
	"bytes"
	"encoding/binary"
	"errors"
	"time"
)

// FrameRate is the keyframe rate of MMD motion data.
const FrameRate = 30

const (
	vmdMagic        = "Vocaloid Motion Data 0002"
	vmdHeaderSize   = 30
	vmdNameSize     = 20
	vmdBoneRecord   = 111
	vmdMorphRecord  = 23
	vmdCameraRecord = 61
	vmdFrameOffset  = 15
)

var errNotVMD = errors.New("not a vmd motion")

// MotionInfo summarizes a motion file.
type MotionInfo struct {
	ModelName string
	Keyframes int
	MaxFrame  uint32
}

// Duration converts MaxFrame to wall time at FrameRate.
func (m MotionInfo) Duration() time.Duration {
	return time.Duration(m.MaxFrame) * time.Second / FrameRate
}

// ParseVMD reads the keyframe sections of a VMD file and returns the last
// keyframe index across bone, morph and camera tracks. Trailing sections
// may be absent.
func ParseVMD(data []byte) (MotionInfo, error) {
	if len(data) < vmdHeaderSize+vmdNameSize || !bytes.HasPrefix(data, []byte(vmdMagic)) {
		return MotionInfo{}, errNotVMD
	}
	name := data[vmdHeaderSize : vmdHeaderSize+vmdNameSize]
	if i := bytes.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}
	info := MotionInfo{ModelName: string(name)}
	rest := data[vmdHeaderSize+vmdNameSize:]

	sections := []struct {
		record int
		offset int
	}{
		{vmdBoneRecord, vmdFrameOffset},
		{vmdMorphRecord, vmdFrameOffset},
		{vmdCameraRecord, 0},
	}
	for _, sec := range sections {
		if len(rest) < 4 {
			break
		}
		count := int(binary.LittleEndian.Uint32(rest))
		rest = rest[4:]
		if count < 0 || count > len(rest)/sec.record {
			return MotionInfo{}, errors.New("vmd keyframe section truncated")
		}
		for i := 0; i < count; i++ {
			rec := rest[i*sec.record : (i+1)*sec.record]
			frame := binary.LittleEndian.Uint32(rec[sec.offset:])
			if frame > info.MaxFrame {
				info.MaxFrame = frame
			}
		}
		info.Keyframes += count
		rest = rest[count*sec.record:]
	}
	return info, nil
}

// modelFormat names a model file by its magic bytes.
func modelFormat(data []byte) string {
	switch {
	case bytes.HasPrefix(data, []byte("PMX ")):
		return "pmx"
	case bytes.HasPrefix(data, []byte("BPMX")):
		return "bpmx"
	case bytes.HasPrefix(data, []byte("Pmd")):
		return "pmd"
	default:
		return "unknown"
	}
}
