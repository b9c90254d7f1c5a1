package leveldata

import (
	"testing"
	"testing/fstest"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="8" tilewidth="16" tileheight="16" infinite="0" nextlayerid="5" nextobjectid="10">
 <objectgroup id="1" name="Walls">
  <object id="1" x="0" y="112" width="160" height="16"/>
 </objectgroup>
 <objectgroup id="2" name="Platforms">
  <object id="2" x="32" y="64" width="48" height="8"/>
 </objectgroup>
 <objectgroup id="3" name="FloatingPlatforms">
  <object id="3" x="96" y="96" width="32" height="8">
   <properties>
    <property name="travel" type="float" value="64"/>
   </properties>
  </object>
  <object id="4" x="16" y="96" width="32" height="8"/>
 </objectgroup>
 <objectgroup id="4" name="PlayerSpawn">
  <object id="5" x="24" y="100"/>
 </objectgroup>
</map>
`

func testFS(tmx string) fstest.MapFS {
	return fstest.MapFS{
		"levels/test.tmx": &fstest.MapFile{Data: []byte(tmx)},
	}
}

func TestLoad(t *testing.T) {
	data, err := Load(testFS(testTMX), "levels/test.tmx")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if data.Width != 160 || data.Height != 128 {
		t.Errorf("map size = %v x %v, want 160 x 128", data.Width, data.Height)
	}
	if len(data.Walls) != 1 || data.Walls[0] != (Rect{X: 0, Y: 112, W: 160, H: 16}) {
		t.Errorf("walls = %+v", data.Walls)
	}
	if len(data.Platforms) != 1 || data.Platforms[0].Y != 64 {
		t.Errorf("platforms = %+v", data.Platforms)
	}
	if data.SpawnX != 24 || data.SpawnY != 100 {
		t.Errorf("spawn = (%v, %v), want (24, 100)", data.SpawnX, data.SpawnY)
	}
}

func TestLoadFloaterTravel(t *testing.T) {
	data, err := Load(testFS(testTMX), "levels/test.tmx")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(data.Floaters) != 2 {
		t.Fatalf("floaters = %+v, want 2", data.Floaters)
	}
	if data.Floaters[0].Travel != 64 {
		t.Errorf("explicit travel = %v, want 64", data.Floaters[0].Travel)
	}
	if data.Floaters[1].Travel != defaultFloaterTravel {
		t.Errorf("default travel = %v, want %v", data.Floaters[1].Travel, defaultFloaterTravel)
	}
}

func TestLoadRejectsIncompleteLevels(t *testing.T) {
	noSpawn := `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="16" tileheight="16" infinite="0" nextlayerid="2" nextobjectid="3">
 <objectgroup id="1" name="Walls">
  <object id="1" x="0" y="48" width="64" height="16"/>
 </objectgroup>
</map>
`
	if _, err := Load(testFS(noSpawn), "levels/test.tmx"); err == nil {
		t.Error("level without spawn should fail to load")
	}

	if _, err := Load(testFS(testTMX), "levels/missing.tmx"); err == nil {
		t.Error("missing file should fail to load")
	}
}
