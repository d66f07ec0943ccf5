package progdesc

import "testing"

func TestSwizzleRequiresRemap(t *testing.T) {
	tests := []struct {
		name    string
		caps    Caps
		config  ComponentFlags
		swizzle ComponentFlags
		want    bool
	}{
		{
			name:    "hardware swizzle handles everything",
			caps:    Caps{TextureSwizzleSupport: true, TextureRedSupport: true},
			config:  ComponentA,
			swizzle: ComponentRGBA,
			want:    false,
		},
		{
			name:    "alpha read of alpha-only with red support",
			caps:    Caps{TextureRedSupport: true},
			config:  ComponentA,
			swizzle: ComponentA,
			want:    true,
		},
		{
			name:    "alpha read of alpha-only without red support",
			caps:    Caps{},
			config:  ComponentA,
			swizzle: ComponentA,
			want:    false,
		},
		{
			name:    "rgb read of alpha-only",
			caps:    Caps{},
			config:  ComponentA,
			swizzle: ComponentR | ComponentG,
			want:    true,
		},
		{
			name:    "rgb read of alpha-only with red support",
			caps:    Caps{TextureRedSupport: true},
			config:  ComponentA,
			swizzle: ComponentB,
			want:    true,
		},
		{
			name:    "rgba texture never remaps",
			caps:    Caps{TextureRedSupport: true},
			config:  ComponentRGBA,
			swizzle: ComponentRGBA,
			want:    false,
		},
		{
			name:    "red-only texture never remaps",
			caps:    Caps{TextureRedSupport: true},
			config:  ComponentR,
			swizzle: ComponentRGB,
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SwizzleRequiresRemap(&tt.caps, tt.config, tt.swizzle)
			if got != tt.want {
				t.Errorf("SwizzleRequiresRemap(%v, %v) = %t, want %t",
					tt.config, tt.swizzle, got, tt.want)
			}
		})
	}
}

func TestTextureKeyBitPerSlot(t *testing.T) {
	caps := &Caps{TextureRedSupport: true}
	proc := &testProc{
		classID: 7,
		textures: []TextureAccess{
			{Config: ConfigRGBA8, Swizzle: ComponentRGBA}, // slot 0: no remap
			{Config: ConfigAlpha8, Swizzle: ComponentA},   // slot 1: remap
			{Config: ConfigAlpha8, Swizzle: ComponentRGB}, // slot 2: remap
			{Config: ConfigRed8, Swizzle: ComponentR},     // slot 3: no remap
		},
	}

	key := textureKey(proc, caps)
	if want := uint32(0b0110); key != want {
		t.Errorf("textureKey = %#b, want %#b", key, want)
	}
}

func TestPixelConfigComponents(t *testing.T) {
	tests := []struct {
		config PixelConfig
		want   ComponentFlags
	}{
		{ConfigUnknown, 0},
		{ConfigAlpha8, ComponentA},
		{ConfigRed8, ComponentR},
		{ConfigRGB8, ComponentRGB},
		{ConfigRGBA8, ComponentRGBA},
		{ConfigBGRA8, ComponentRGBA},
	}
	for _, tt := range tests {
		if got := tt.config.Components(); got != tt.want {
			t.Errorf("Components(%d) = %v, want %v", tt.config, got, tt.want)
		}
	}
}
