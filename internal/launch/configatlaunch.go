//    CaseTopics
//    Copyright: Lexicon Labs 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package launch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"text/template"
	"time"

	"github.com/lexiconlabs/casetopics/internal/m"
	"github.com/lexiconlabs/casetopics/internal/structs"
	"github.com/lexiconlabs/casetopics/internal/vv"
)

var (
	Config *structs.CurrentConfiguration
	Msg    = m.NewMessageMaker(vv.DEFAULTLOGLEVEL, false, m.LaunchStruct{
		Name:       vv.MYNAME,
		Version:    vv.VERSION,
		Shortname:  vv.SHORTNAME,
		LaunchTime: time.Now(),
	})
)

// ConfigAtLaunch - build the configuration from defaults, then a JSON file, then the command line
func ConfigAtLaunch() {
	const (
		FAIL1 = `Could not parse the information in '%s'. Skipping and attempting to use built-in defaults instead.`
		FAIL2 = "Refusing to set a workercount greater than NumCPU: %d > %d ---> setting workercount value to NumCPU: %d"
		FAIL3 = "unknown weighting '%s'; only '%s' and '%s' are available"
		FAIL4 = "unknown model '%s'; only '%s' and '%s' are available"
		FAIL5 = "ConfigAtLaunch() failed to execute help text template"
	)

	Config = BuildDefaultConfig()

	cf := vv.CONFIGNAME

	// a "-c" has to win before the rest of the flags are read
	args := os.Args[1:]
	for i, a := range args {
		if a == "-c" {
			cf = args[i+1]
		}
	}

	loaded, e := os.Open(cf)
	if e == nil {
		decoder := json.NewDecoder(loaded)
		conf := structs.CurrentConfiguration{}
		errc := decoder.Decode(&conf)
		_ = loaded.Close()
		if errc == nil {
			Config = &conf
		} else {
			Msg.CRIT(fmt.Sprintf(FAIL1, cf))
		}
	}

	help := func() {
		printversion()
		fmt.Println(vv.TERMINALTEXT)

		mm := map[string]interface{}{
			"conffile":   vv.CONFIGNAME,
			"corpus":     Config.CorpusFile,
			"cpus":       runtime.NumCPU(),
			"iterations": iterationsfor(Config),
			"loglevel":   Config.LogLevel,
			"maxdf":      Config.MaxDocFreqRatio,
			"maxrecords": Config.MaxRecords,
			"maxvocab":   Config.MaxVocabSize,
			"mindf":      Config.MinDocFreqCount,
			"model":      Config.Model,
			"nmfinit":    Config.NMFInit,
			"offset":     Config.LearningOffset,
			"seed":       Config.Seed,
			"topdocs":    Config.TopDocs,
			"topics":     Config.Topics,
			"topterms":   Config.TopTerms,
			"weighting":  Config.Weighting,
			"workers":    Config.WorkerCount,
		}

		t := template.Must(template.New("").Parse(vv.HELPTEXTTEMPLATE))

		var b bytes.Buffer
		if ee := t.Execute(&b, mm); ee != nil {
			Msg.CRIT(FAIL5)
		}
		fmt.Println(Msg.ColStyle(b.String()))

		os.Exit(0)
	}

	for i, a := range args {
		switch a {
		case "-bw":
			Config.BlackAndWhite = true
		case "-c":
			// already handled
		case "-cp":
			Config.ProfCPU = true
		case "-f":
			Config.CorpusFile = args[i+1]
		case "-h":
			help()
		case "-i":
			it, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.LDAIterations = it
			Config.NMFIterations = it
		case "-k":
			k, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.Topics = k
		case "-l":
			ll, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.LogLevel = ll
		case "-lo":
			lo, err := strconv.ParseFloat(args[i+1], 64)
			Msg.EC(err)
			Config.LearningOffset = lo
		case "-m":
			Config.Model = args[i+1]
		case "-mp":
			Config.ProfMem = true
		case "-n":
			n, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.MaxRecords = n
		case "-ni":
			Config.NMFInit = args[i+1]
		case "-r":
			Config.WriteReport = true
		case "-sd":
			sd, err := strconv.ParseUint(args[i+1], 10, 64)
			Msg.EC(err)
			Config.Seed = sd
		case "-td":
			td, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.TopDocs = td
		case "-tt":
			tt, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.TopTerms = tt
		case "-v":
			fmt.Println(vv.VERSION)
			os.Exit(1)
		case "-w":
			Config.Weighting = args[i+1]
		case "-wc":
			wc, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.WorkerCount = wc
		case "-xc":
			xc, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.MinDocFreqCount = xc
		case "-xr":
			xr, err := strconv.ParseFloat(args[i+1], 64)
			Msg.EC(err)
			Config.MaxDocFreqRatio = xr
		case "-xv":
			xv, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.MaxVocabSize = xv
		default:
			// do nothing
		}
	}

	Msg.LogLevel = Config.LogLevel
	Msg.BlackAndWhite = Config.BlackAndWhite

	if Config.Weighting != vv.WEIGHTCOUNT && Config.Weighting != vv.WEIGHTTFIDF {
		Msg.CRIT(fmt.Sprintf(FAIL3, Config.Weighting, vv.WEIGHTCOUNT, vv.WEIGHTTFIDF))
		Msg.ExitOrHang(1)
	}

	if Config.Model != vv.MODELLDA && Config.Model != vv.MODELNMF {
		Msg.CRIT(fmt.Sprintf(FAIL4, Config.Model, vv.MODELLDA, vv.MODELNMF))
		Msg.ExitOrHang(1)
	}

	if Config.WorkerCount > runtime.NumCPU() {
		Msg.CRIT(fmt.Sprintf(FAIL2, Config.WorkerCount, runtime.NumCPU(), runtime.NumCPU()))
		Config.WorkerCount = runtime.NumCPU()
	}
}

// BuildDefaultConfig - return a CurrentConfiguration filled out with the built-in default values
func BuildDefaultConfig() *structs.CurrentConfiguration {
	var c structs.CurrentConfiguration
	c.BlackAndWhite = false
	c.CorpusFile = vv.DEFAULTCORPUS
	c.LDAIterations = vv.DEFAULTLDAITERATIONS
	c.LearningOffset = vv.DEFAULTLEARNINGOFFSET
	c.LogLevel = vv.DEFAULTLOGLEVEL
	c.MaxDocFreqRatio = vv.DEFAULTMAXDFRATIO
	c.MaxRecords = vv.DEFAULTMAXRECORDS
	c.MaxVocabSize = vv.DEFAULTMAXVOCABSIZE
	c.MinDocFreqCount = vv.DEFAULTMINDFCOUNT
	c.Model = vv.MODELLDA
	c.NMFInit = vv.NMFINITNNDSVD
	c.NMFIterations = vv.DEFAULTNMFITERATIONS
	c.ProfCPU = false
	c.ProfMem = false
	c.Seed = vv.DEFAULTSEED
	c.TfidfMinDocFreq = vv.DEFAULTTFIDFMINDF
	c.TopDocs = vv.DEFAULTTOPDOCS
	c.Topics = vv.DEFAULTTOPICS
	c.TopTerms = vv.DEFAULTTOPTERMS
	c.Weighting = vv.WEIGHTCOUNT
	c.WorkerCount = runtime.NumCPU()
	c.WriteReport = false
	return &c
}

func iterationsfor(c *structs.CurrentConfiguration) int {
	if c.Model == vv.MODELNMF {
		return c.NMFIterations
	}
	return c.LDAIterations
}

func printversion() {
	// [CaseTopics v.0.1.0]
	v := fmt.Sprintf("[C1%sC0 v.C2%sC0]", vv.MYNAME, vv.VERSION)
	fmt.Println(Msg.Color(v))
}
