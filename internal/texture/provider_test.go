package texture

import (
	"testing"

	"github.com/wadview/render/texcat"
)

func onePixelPatch(w, h int, value byte) texcat.Patch {
	cols := make([][]texcat.PixelSpan, w)
	for x := range cols {
		cols[x] = []texcat.PixelSpan{{Top: 0, Pixels: repeat(value, h)}}
	}
	return texcat.Patch{Width: w, Height: h, Columns: cols}
}

func repeat(v byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestProviderComposesOnce(t *testing.T) {
	cat := texcat.NewInMemoryCatalog()
	cat.AddPatch("BRICK", onePixelPatch(4, 4, 7))
	id := texcat.NewTextureID("WALL1")
	cat.AddTexture(id, texcat.TextureDef{
		Width: 4, Height: 4,
		Patches: []texcat.PatchPlacement{{PatchName: "BRICK", OriginX: 0, OriginY: 0}},
	})

	p, err := NewProvider(cat, 8, nil)
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}

	tex1, err := p.Texture(id)
	if err != nil {
		t.Fatalf("Texture: %v", err)
	}
	tex2, err := p.Texture(id)
	if err != nil {
		t.Fatalf("Texture (cached): %v", err)
	}
	if tex1 != tex2 {
		t.Errorf("expected cached composition to return the same *Texture, got distinct pointers")
	}
}

func TestProviderNotFound(t *testing.T) {
	cat := texcat.NewInMemoryCatalog()
	p, _ := NewProvider(cat, 8, nil)

	_, err := p.Texture(texcat.NewTextureID("MISSING"))
	if err != ErrNotFound {
		t.Errorf("Texture(missing) err = %v, want ErrNotFound", err)
	}
}

func TestTextureColumnWrapsEuclidean(t *testing.T) {
	cols := make([][]texcat.PixelSpan, 4)
	for i := range cols {
		cols[i] = []texcat.PixelSpan{{Top: 0, Pixels: []byte{byte(i)}}}
	}
	tex := &Texture{Width: 4, Height: 1, columns: cols}

	tests := []struct {
		x    int32
		want byte
	}{
		{0, 0}, {3, 3}, {4, 0}, {-1, 3}, {-4, 0}, {9, 1},
	}
	for _, tt := range tests {
		got := tex.Column(tt.x)
		if len(got) != 1 || got[0].Pixels[0] != tt.want {
			t.Errorf("Column(%d) = %v, want pixel %d", tt.x, got, tt.want)
		}
	}
}

func TestComposeLaterPatchOverwritesColumn(t *testing.T) {
	cat := texcat.NewInMemoryCatalog()
	cat.AddPatch("BACK", onePixelPatch(2, 2, 1))
	cat.AddPatch("FRONT", onePixelPatch(2, 2, 9))
	id := texcat.NewTextureID("DOOR")
	cat.AddTexture(id, texcat.TextureDef{
		Width: 2, Height: 2,
		Patches: []texcat.PatchPlacement{
			{PatchName: "BACK", OriginX: 0, OriginY: 0},
			{PatchName: "FRONT", OriginX: 0, OriginY: 0},
		},
	})
	p, _ := NewProvider(cat, 4, nil)
	tex, err := p.Texture(id)
	if err != nil {
		t.Fatalf("Texture: %v", err)
	}
	spans := tex.Column(0)
	if len(spans) != 2 {
		t.Fatalf("expected both patches' spans retained for later compositing, got %d", len(spans))
	}
	if spans[len(spans)-1].Pixels[0] != 9 {
		t.Errorf("expected the later patch's span last (painted on top), got %v", spans)
	}
}
