package cmd

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"

	"github.com/openmusickit/tonalgo/midi"
	"github.com/openmusickit/tonalgo/spell"
	"github.com/openmusickit/tonalgo/util"
)

var listenFlats bool

func init() {
	listenCmd.Flags().BoolVar(&listenFlats, "flats", false, "spell black keys as flats")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Spells notes played on a MIDI input",
	Long:  `Spells notes played on a MIDI input`,
	Run: func(cmd *cobra.Command, args []string) {
		listen()
	},
}

func listen() {
	defer gomidi.CloseDriver()
	in, err := gomidi.InPort(0)
	if err != nil {
		fmt.Println("can't find a MIDI input port")
		return
	}

	var mu sync.Mutex
	pressed := make(map[uint8]bool)
	deb := debounce.New(50 * time.Millisecond)

	printPressed := func() {
		mu.Lock()
		keys := util.GetKeys(pressed)
		mu.Unlock()
		if len(keys) == 0 {
			return
		}
		sort.Slice(keys, func(i, j int) bool {
			return keys[i] < keys[j]
		})

		var names []string
		for _, key := range keys {
			v := midi.FromKey(key, listenFlats)
			name, err := spell.UnicodeC4(v)
			if err != nil {
				name = v.String()
			}
			names = append(names, name)
		}
		fmt.Println(strings.Join(names, " "))
	}

	stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			mu.Lock()
			pressed[key] = true
			mu.Unlock()
			deb(printPressed)
		case msg.GetNoteEnd(&ch, &key):
			mu.Lock()
			delete(pressed, key)
			mu.Unlock()
			deb(printPressed)
		default:
			// ignore
		}
	})
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	time.Sleep(time.Second * 5000)
	stop()
}
