package domain

// Genre 是搜索的类型过滤值。
type Genre string

const (
	GenreAll              Genre = ""
	GenreAction           Genre = "Action"
	GenreAdventure        Genre = "Adventure"
	GenreArcade           Genre = "Arcade"
	GenreBattleArena      Genre = "Battle Arena"
	GenreBeatEmUp         Genre = "Beat 'em Up"
	GenreBoardGame        Genre = "Board Game"
	GenreBreakout         Genre = "Breakout"
	GenreCardGame         Genre = "Card Game"
	GenreCityBuilding     Genre = "City-Building"
	GenreCompilation      Genre = "Compilation"
	GenreEducational      Genre = "Educational"
	GenreFighting         Genre = "Fighting"
	GenreFitness          Genre = "Fitness"
	GenreFlight           Genre = "Flight"
	GenreFMV              Genre = "Full Motion Video (FMV)"
	GenreHackAndSlash     Genre = "Hack and Slash"
	GenreHiddenObject     Genre = "Hidden Object"
	GenreHorror           Genre = "Horror"
	GenreInteractiveArt   Genre = "Interactive Art"
	GenreManagement       Genre = "Management"
	GenreMusicRhythm      Genre = "Music/Rhythm"
	GenreOpenWorld        Genre = "Open World"
	GenreParty            Genre = "Party"
	GenrePinball          Genre = "Pinball"
	GenrePlatform         Genre = "Platform"
	GenrePuzzle           Genre = "Puzzle"
	GenreRacingDriving    Genre = "Racing/Driving"
	GenreRoguelike        Genre = "Roguelike"
	GenreRolePlaying      Genre = "Role-Playing"
	GenreSandbox          Genre = "Sandbox"
	GenreShooter          Genre = "Shooter"
	GenreSimulation       Genre = "Simulation"
	GenreSocial           Genre = "Social"
	GenreSports           Genre = "Sports"
	GenreStealth          Genre = "Stealth"
	GenreStrategyTactical Genre = "Strategy/Tactical"
	GenreSurvival         Genre = "Survival"
	GenreTowerDefense     Genre = "Tower Defense"
	GenreTrivia           Genre = "Trivia"
	GenreVehicularCombat  Genre = "Vehicular Combat"
	GenreVisualNovel      Genre = "Visual Novel"
)

// Platform 是搜索的平台过滤值（取值即站点表单中的原文）。
type Platform string

const (
	PlatformAll                 Platform = ""
	PlatformThreeDO             Platform = "3DO"
	PlatformAcornArchimedes     Platform = "Acorn Archimedes"
	PlatformAmiga               Platform = "Amiga"
	PlatformAmigaCD32           Platform = "Amiga CD32"
	PlatformAmstradCPC          Platform = "Amstrad CPC"
	PlatformAndroid             Platform = "Android"
	PlatformAppleII             Platform = "Apple II"
	PlatformArcade              Platform = "Arcade"
	PlatformAtari8bit           Platform = "Atari 8-bit Family"
	PlatformAtari2600           Platform = "Atari 2600"
	PlatformAtari5200           Platform = "Atari 5200"
	PlatformAtari7800           Platform = "Atari 7800"
	PlatformAtariJaguar         Platform = "Atari Jaguar"
	PlatformAtariJaguarCD       Platform = "Atari Jaguar CD"
	PlatformAtariLynx           Platform = "Atari Lynx"
	PlatformAtariST             Platform = "Atari ST"
	PlatformBBCMicro            Platform = "BBC Micro"
	PlatformBrowser             Platform = "Browser"
	PlatformColecoVision        Platform = "ColecoVision"
	PlatformCommodore64         Platform = "Commodore 64"
	PlatformCommodorePET        Platform = "Commodore PET"
	PlatformCommodoreVIC20      Platform = "Commodore VIC-20"
	PlatformDreamcast           Platform = "Dreamcast"
	PlatformEmulated            Platform = "Emulated"
	PlatformFMTowns             Platform = "FM Towns"
	PlatformGameAndWatch        Platform = "Game & Watch"
	PlatformGameBoy             Platform = "Game Boy"
	PlatformGameBoyAdvance      Platform = "Game Boy Advance"
	PlatformGameBoyColor        Platform = "Game Boy Color"
	PlatformGearVR              Platform = "Gear VR"
	PlatformGizmondo            Platform = "Gizmondo"
	PlatformGoogleStadia        Platform = "Google Stadia"
	PlatformIntellivision       Platform = "Intellivision"
	PlatformInteractiveMovie    Platform = "Interactive Movie"
	PlatformIOS                 Platform = "iOS"
	PlatformLinux               Platform = "Linux"
	PlatformMac                 Platform = "Mac"
	PlatformMobile              Platform = "Mobile"
	PlatformMSX                 Platform = "MSX"
	PlatformNGage               Platform = "N-Gage"
	PlatformNECPC88             Platform = "NEC PC-88"
	PlatformNECPC98             Platform = "NEC PC-98"
	PlatformNECPCFX             Platform = "NEC PC-FX"
	PlatformNeoGeo              Platform = "Neo Geo"
	PlatformNeoGeoCD            Platform = "Neo Geo CD"
	PlatformNeoGeoPocket        Platform = "Neo Geo Pocket"
	PlatformNES                 Platform = "NES"
	PlatformNintendo3DS         Platform = "Nintendo 3DS"
	PlatformNintendo64          Platform = "Nintendo 64"
	PlatformNintendoDS          Platform = "Nintendo DS"
	PlatformNintendoGameCube    Platform = "Nintendo GameCube"
	PlatformNintendoSwitch      Platform = "Nintendo Switch"
	PlatformOculusGo            Platform = "Oculus Go"
	PlatformOculusQuest         Platform = "Oculus Quest"
	PlatformOdyssey             Platform = "Odyssey"
	PlatformOdyssey2            Platform = "Odyssey 2"
	PlatformOnLive              Platform = "OnLive"
	PlatformOuya                Platform = "Ouya"
	PlatformPC                  Platform = "PC"
	PlatformPCVR                Platform = "PC VR"
	PlatformPhilipsCDi          Platform = "Philips CD-i"
	PlatformPlayStation         Platform = "PlayStation"
	PlatformPlayStation2        Platform = "PlayStation 2"
	PlatformPlayStation3        Platform = "PlayStation 3"
	PlatformPlayStation4        Platform = "PlayStation 4"
	PlatformPlayStation5        Platform = "PlayStation 5"
	PlatformPlayStationMobile   Platform = "PlayStation Mobile"
	PlatformPlayStationNow      Platform = "PlayStation Now"
	PlatformPlayStationPortable Platform = "PlayStation Portable"
	PlatformPlayStationVita     Platform = "PlayStation Vita"
	PlatformPlayStationVR       Platform = "PlayStation VR"
	PlatformPlugAndPlay         Platform = "Plug & Play"
	PlatformSega32X             Platform = "Sega 32X"
	PlatformSegaCD              Platform = "Sega CD"
	PlatformSegaGameGear        Platform = "Sega Game Gear"
	PlatformSegaMasterSystem    Platform = "Sega Master System"
	PlatformSegaMegaDrive       Platform = "Sega Mega Drive/Genesis"
	PlatformSegaPico            Platform = "Sega Pico"
	PlatformSegaSaturn          Platform = "Sega Saturn"
	PlatformSG1000              Platform = "SG-1000"
	PlatformSharpX1             Platform = "Sharp X1"
	PlatformSharpX68000         Platform = "Sharp X68000"
	PlatformSuperNintendo       Platform = "Super Nintendo"
	PlatformTigerHandheld       Platform = "Tiger Handheld"
	PlatformTurboGrafx16        Platform = "TurboGrafx-16"
	PlatformTurboGrafxCD        Platform = "TurboGrafx-CD"
	PlatformVirtualBoy          Platform = "Virtual Boy"
	PlatformWii                 Platform = "Wii"
	PlatformWiiU                Platform = "Wii U"
	PlatformWindowsPhone        Platform = "Windows Phone"
	PlatformWonderSwan          Platform = "WonderSwan"
	PlatformXbox                Platform = "Xbox"
	PlatformXbox360             Platform = "Xbox 360"
	PlatformXboxOne             Platform = "Xbox One"
	PlatformXboxSeries          Platform = "Xbox Series X/S"
	PlatformZeebo               Platform = "Zeebo"
	PlatformZXSpectrum          Platform = "ZX Spectrum"
)

var genres = map[Genre]struct{}{
	GenreAll:              {},
	GenreAction:           {},
	GenreAdventure:        {},
	GenreArcade:           {},
	GenreBattleArena:      {},
	GenreBeatEmUp:         {},
	GenreBoardGame:        {},
	GenreBreakout:         {},
	GenreCardGame:         {},
	GenreCityBuilding:     {},
	GenreCompilation:      {},
	GenreEducational:      {},
	GenreFighting:         {},
	GenreFitness:          {},
	GenreFlight:           {},
	GenreFMV:              {},
	GenreHackAndSlash:     {},
	GenreHiddenObject:     {},
	GenreHorror:           {},
	GenreInteractiveArt:   {},
	GenreManagement:       {},
	GenreMusicRhythm:      {},
	GenreOpenWorld:        {},
	GenreParty:            {},
	GenrePinball:          {},
	GenrePlatform:         {},
	GenrePuzzle:           {},
	GenreRacingDriving:    {},
	GenreRoguelike:        {},
	GenreRolePlaying:      {},
	GenreSandbox:          {},
	GenreShooter:          {},
	GenreSimulation:       {},
	GenreSocial:           {},
	GenreSports:           {},
	GenreStealth:          {},
	GenreStrategyTactical: {},
	GenreSurvival:         {},
	GenreTowerDefense:     {},
	GenreTrivia:           {},
	GenreVehicularCombat:  {},
	GenreVisualNovel:      {},
}

var platforms = map[Platform]struct{}{
	PlatformAll:                 {},
	PlatformThreeDO:             {},
	PlatformAcornArchimedes:     {},
	PlatformAmiga:               {},
	PlatformAmigaCD32:           {},
	PlatformAmstradCPC:          {},
	PlatformAndroid:             {},
	PlatformAppleII:             {},
	PlatformArcade:              {},
	PlatformAtari8bit:           {},
	PlatformAtari2600:           {},
	PlatformAtari5200:           {},
	PlatformAtari7800:           {},
	PlatformAtariJaguar:         {},
	PlatformAtariJaguarCD:       {},
	PlatformAtariLynx:           {},
	PlatformAtariST:             {},
	PlatformBBCMicro:            {},
	PlatformBrowser:             {},
	PlatformColecoVision:        {},
	PlatformCommodore64:         {},
	PlatformCommodorePET:        {},
	PlatformCommodoreVIC20:      {},
	PlatformDreamcast:           {},
	PlatformEmulated:            {},
	PlatformFMTowns:             {},
	PlatformGameAndWatch:        {},
	PlatformGameBoy:             {},
	PlatformGameBoyAdvance:      {},
	PlatformGameBoyColor:        {},
	PlatformGearVR:              {},
	PlatformGizmondo:            {},
	PlatformGoogleStadia:        {},
	PlatformIntellivision:       {},
	PlatformInteractiveMovie:    {},
	PlatformIOS:                 {},
	PlatformLinux:               {},
	PlatformMac:                 {},
	PlatformMobile:              {},
	PlatformMSX:                 {},
	PlatformNGage:               {},
	PlatformNECPC88:             {},
	PlatformNECPC98:             {},
	PlatformNECPCFX:             {},
	PlatformNeoGeo:              {},
	PlatformNeoGeoCD:            {},
	PlatformNeoGeoPocket:        {},
	PlatformNES:                 {},
	PlatformNintendo3DS:         {},
	PlatformNintendo64:          {},
	PlatformNintendoDS:          {},
	PlatformNintendoGameCube:    {},
	PlatformNintendoSwitch:      {},
	PlatformOculusGo:            {},
	PlatformOculusQuest:         {},
	PlatformOdyssey:             {},
	PlatformOdyssey2:            {},
	PlatformOnLive:              {},
	PlatformOuya:                {},
	PlatformPC:                  {},
	PlatformPCVR:                {},
	PlatformPhilipsCDi:          {},
	PlatformPlayStation:         {},
	PlatformPlayStation2:        {},
	PlatformPlayStation3:        {},
	PlatformPlayStation4:        {},
	PlatformPlayStation5:        {},
	PlatformPlayStationMobile:   {},
	PlatformPlayStationNow:      {},
	PlatformPlayStationPortable: {},
	PlatformPlayStationVita:     {},
	PlatformPlayStationVR:       {},
	PlatformPlugAndPlay:         {},
	PlatformSega32X:             {},
	PlatformSegaCD:              {},
	PlatformSegaGameGear:        {},
	PlatformSegaMasterSystem:    {},
	PlatformSegaMegaDrive:       {},
	PlatformSegaPico:            {},
	PlatformSegaSaturn:          {},
	PlatformSG1000:              {},
	PlatformSharpX1:             {},
	PlatformSharpX68000:         {},
	PlatformSuperNintendo:       {},
	PlatformTigerHandheld:       {},
	PlatformTurboGrafx16:        {},
	PlatformTurboGrafxCD:        {},
	PlatformVirtualBoy:          {},
	PlatformWii:                 {},
	PlatformWiiU:                {},
	PlatformWindowsPhone:        {},
	PlatformWonderSwan:          {},
	PlatformXbox:                {},
	PlatformXbox360:             {},
	PlatformXboxOne:             {},
	PlatformXboxSeries:          {},
	PlatformZeebo:               {},
	PlatformZXSpectrum:          {},
}

// Valid 报告 g 是否属于站点支持的类型取值（空串表示全部）。
func (g Genre) Valid() bool {
	_, ok := genres[g]
	return ok
}

func (p Platform) Valid() bool {
	_, ok := platforms[p]
	return ok
}

// 零值（""）对这些枚举来说都是合法的“默认”。

func (l LengthType) Valid() bool {
	switch l {
	case "", LengthMain, LengthExtended, LengthCompletionist, LengthAverage:
		return true
	}
	return false
}

func (s SortBy) Valid() bool {
	switch s {
	case "", SortName, SortMain, SortExtended, SortCompletionist, SortAverageTime, SortTopRated,
		SortMostPopular, SortMostBacklogs, SortMostSubmitted, SortMostPlayed, SortMostSpeedruns, SortReleaseDate:
		return true
	}
	return false
}

func (o SortOrder) Valid() bool {
	return o == SortDescending || o == SortAscending
}

func (m Modifier) Valid() bool {
	switch m {
	case ModifierNone, ModifierHideDLC, ModifierOnlyDLC:
		return true
	}
	return false
}

func (p Perspective) Valid() bool {
	switch p {
	case PerspectiveAll, PerspectiveFirstPerson, PerspectiveIsometric, PerspectiveSide, PerspectiveText,
		PerspectiveThirdPerson, PerspectiveTopDown, PerspectiveVirtualReality:
		return true
	}
	return false
}

func (f Flow) Valid() bool {
	switch f {
	case FlowAll, FlowIncremental, FlowMassiveMultiplayer, FlowMultidirectional, FlowOnRails,
		FlowPointAndClick, FlowRealTime, FlowScrolling, FlowTurnBased:
		return true
	}
	return false
}
