package sfo

// KeyID identifies an entry of the key catalogue. KeyUnknown marks a key
// whose text is not in the catalogue.
type KeyID uint8

const (
	KeyUnknown KeyID = iota
	KeyAccountID
	KeyAccountIDCompact
	KeyAnalogMode
	KeyAppVer
	KeyAttribute
	KeyBootable
	KeyCategory
	KeyContentID
	KeyDetail
	KeyGamedataID
	KeyItemPriority
	KeyLang
	KeyLicense
	KeyNPCommunicationID
	KeyNPCommID
	KeyPadding
	KeyParams
	KeyParams2
	KeyParentalLevelX
	KeyParentalLevel
	KeyParentalLevelCompact
	KeyPatchFile
	KeyPS3SystemVer
	KeyRegionDeny
	KeyResolution
	KeySavedataDetail
	KeySavedataDirectory
	KeySavedataFileList
	KeySavedataListParam
	KeySavedataParams
	KeySavedataTitle
	KeySoundFormat
	KeySource
	KeySubTitle
	KeyTargetAppVer
	KeyTitle
	KeyTitleID
	KeyTitleXX
	KeyTitleID0XX
	KeyVersion
	KeyXMBApps

	numKeyIDs
)

var keyNames = [numKeyIDs]string{
	KeyAccountID:            "ACCOUNT_ID",
	KeyAccountIDCompact:     "ACCOUNTID",
	KeyAnalogMode:           "ANALOG_MODE",
	KeyAppVer:               "APP_VER",
	KeyAttribute:            "ATTRIBUTE",
	KeyBootable:             "BOOTABLE",
	KeyCategory:             "CATEGORY",
	KeyContentID:            "CONTENT_ID",
	KeyDetail:               "DETAIL",
	KeyGamedataID:           "GAMEDATA_ID",
	KeyItemPriority:         "ITEM_PRIORITY",
	KeyLang:                 "LANG",
	KeyLicense:              "LICENSE",
	KeyNPCommunicationID:    "NP_COMMUNICATION_ID",
	KeyNPCommID:             "NP_COMM_ID",
	KeyPadding:              "PADDING",
	KeyParams:               "PARAMS",
	KeyParams2:              "PARAMS2",
	KeyParentalLevelX:       "PARENTAL_LEVEL_x",
	KeyParentalLevel:        "PARENTAL_LEVEL",
	KeyParentalLevelCompact: "PARENTALLEVEL",
	KeyPatchFile:            "PATCH_FILE",
	KeyPS3SystemVer:         "PS3_SYSTEM_VER",
	KeyRegionDeny:           "REGION_DENY",
	KeyResolution:           "RESOLUTION",
	KeySavedataDetail:       "SAVEDATA_DETAIL",
	KeySavedataDirectory:    "SAVEDATA_DIRECTORY",
	KeySavedataFileList:     "SAVEDATA_FILE_LIST",
	KeySavedataListParam:    "SAVEDATA_LIST_PARAM",
	KeySavedataParams:       "SAVEDATA_PARAMS",
	KeySavedataTitle:        "SAVEDATA_TITLE",
	KeySoundFormat:          "SOUND_FORMAT",
	KeySource:               "SOURCE",
	KeySubTitle:             "SUB_TITLE",
	KeyTargetAppVer:         "TARGET_APP_VER",
	KeyTitle:                "TITLE",
	KeyTitleID:              "TITLE_ID",
	KeyTitleXX:              "TITLE_XX",
	KeyTitleID0XX:           "TITLEID0XX",
	KeyVersion:              "VERSION",
	KeyXMBApps:              "XMB_APPS",
}

var keyByName = func() map[string]KeyID {
	m := make(map[string]KeyID, numKeyIDs)
	for id := KeyUnknown + 1; id < numKeyIDs; id++ {
		m[keyNames[id]] = id
	}
	return m
}()

// Key names one entry. Known keys compare by catalogue identity; unknown keys
// compare by their literal text. Key is comparable and usable as a map key.
type Key struct {
	id   KeyID
	text string // set only when id == KeyUnknown
}

// ParseKey resolves s against the catalogue. Text outside the catalogue is
// kept verbatim in an unknown key.
func ParseKey(s string) Key {
	if id, ok := keyByName[s]; ok {
		return Key{id: id}
	}
	return Key{id: KeyUnknown, text: s}
}

// Key returns the catalogue key for id. KeyUnknown yields the empty unknown key.
func (id KeyID) Key() Key {
	if id >= numKeyIDs {
		return Key{}
	}
	return Key{id: id}
}

// String returns the catalogue name, or "" for KeyUnknown.
func (id KeyID) String() string {
	if id >= numKeyIDs {
		return ""
	}
	return keyNames[id]
}

// ID returns the catalogue identity of k.
func (k Key) ID() KeyID { return k.id }

// Known reports whether k resolved to a catalogue entry.
func (k Key) Known() bool { return k.id != KeyUnknown }

// String returns the canonical text, used both for display and on disk.
func (k Key) String() string {
	if k.id == KeyUnknown {
		return k.text
	}
	return keyNames[k.id]
}

// Len returns the number of key table bytes k needs, terminator included.
func (k Key) Len() int {
	return len(k.String()) + 1
}

// KnownKeys returns the catalogue in declaration order.
func KnownKeys() []Key {
	out := make([]Key, 0, numKeyIDs-1)
	for id := KeyUnknown + 1; id < numKeyIDs; id++ {
		out = append(out, Key{id: id})
	}
	return out
}
