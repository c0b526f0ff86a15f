package main

import (
	"flag"
	"fmt"
	"os"

	"ritualform/internal/logger"
	"ritualform/internal/types"
)

// Command line flags
var (
	saveFlag      = flag.Bool("save", false, "Save a record from the field flags")
	listFlag      = flag.Bool("list", false, "List stored records, newest first")
	deleteFlag    = flag.String("delete", "", "Delete the record with the given id")
	printFlag     = flag.String("print", "", "Render the record with the given id to PDF")
	importFlag    = flag.String("import", "", "Bulk-import records from an .xlsx file")
	calibrateFlag = flag.Bool("calibrate", false, "Render the printer calibration grid PDF")
	previewFlag   = flag.String("preview", "", "Render a placement preview PNG to the given path")

	offsetXFlag = flag.String("offset-x", "", "Horizontal calibration offset in mm (e.g. 1.5 or -0.5)")
	offsetYFlag = flag.String("offset-y", "", "Vertical calibration offset in mm")
	openFlag    = flag.Bool("open", false, "Open the generated file with the system viewer")
	configFlag  = flag.String("config", "", "Path to the configuration file")

	// Record fields for -save
	nameFlag        = flag.String("name", "", "Indonesian call name (NAMA)")
	designationFlag = flag.String("designation", "", "Mandarin designation 稱呼, required")
	mandarinFlag    = flag.String("mandarin", "", "Mandarin name of the deceased, required")
	romanizedFlag   = flag.String("romanized", "", "Hokkien romanization (PENYEBUTAN)")
	senderFlag      = flag.String("sender", "", "Sender / relationship 陽上, required")
	familyFlag      = flag.String("family", "", "Indonesian family relation (KELUARGA)")
	remarkFlag      = flag.String("remark", "", "Extra note (KETERANGAN)")

	// Lunar date, stored with -save and applied as defaults by -import
	lunarYearFlag  = flag.String("lunar-year", "", "Lunar year 太歲, e.g. 乙巳")
	lunarMonthFlag = flag.String("lunar-month", "", "Lunar month, e.g. 正月")
	lunarDayFlag   = flag.String("lunar-day", "", "Lunar day, e.g. 十五")
)

// printHelp displays the help information for command line usage.
func printHelp() {
	fmt.Println("ritualform - 法会牌位套印工具 (mencetak formulir ritual di atas kertas pra-cetak)")
	fmt.Println()
	fmt.Println("用法:")
	fmt.Println("  ritualform [选项]")
	fmt.Println()
	fmt.Println("选项:")
	fmt.Println("  --save                 保存一条记录 (需要 --designation --mandarin --sender)")
	fmt.Println("  --list                 列出已保存的记录")
	fmt.Println("  --delete <ID>          删除指定记录")
	fmt.Println("  --print <ID>           将指定记录套印为 PDF")
	fmt.Println("  --import <PATH>        从 .xlsx 批量导入 (第二个工作表)")
	fmt.Println("  --calibrate            生成打印机校准网格 PDF")
	fmt.Println("  --preview <PATH>       生成套印预览 PNG")
	fmt.Println("  --offset-x <MM>        水平校准偏移, 毫米 (例如: 1.5 或 -0.5)")
	fmt.Println("  --offset-y <MM>        垂直校准偏移, 毫米")
	fmt.Println("  --open                 生成后用系统查看器打开")
	fmt.Println("  --config <PATH>        配置文件路径")
	fmt.Println("  -h, --help             显示帮助信息")
	fmt.Println()
	fmt.Println("示例:")
	fmt.Println("  ritualform --save --designation 母親許門 --mandarin 梁氏橋玉 --sender 孝男")
	fmt.Println("  ritualform --list")
	fmt.Println("  ritualform --print <ID> --offset-x 1.5 --offset-y -0.5 --open")
	fmt.Println("  ritualform --import \"segel data4.xlsx\" --lunar-year 乙巳 --lunar-month 正月 --lunar-day 十五")
	fmt.Println("  ritualform --calibrate --open")
	fmt.Println("  ritualform --preview preview.png --offset-x 1.5")
}

// run dispatches the selected operation. It returns an exit code.
func run(app *App) int {
	switch {
	case *saveFlag:
		rec := types.Record{
			Name:        *nameFlag,
			Designation: *designationFlag,
			Mandarin:    *mandarinFlag,
			Romanized:   *romanizedFlag,
			Sender:      *senderFlag,
			Family:      *familyFlag,
			Remark:      *remarkFlag,
			LunarYear:   *lunarYearFlag,
			LunarMonth:  *lunarMonthFlag,
			LunarDay:    *lunarDayFlag,
		}
		id, err := app.SaveRecord(rec)
		if err != nil {
			fmt.Fprintf(os.Stderr, "保存失败: %v\n", err)
			return 1
		}
		fmt.Printf("已保存: %s\n", id)

	case *listFlag:
		records, err := app.ListRecords()
		if err != nil {
			fmt.Fprintf(os.Stderr, "读取记录失败: %v\n", err)
			return 1
		}
		if len(records) == 0 {
			fmt.Println("(没有记录)")
			return 0
		}
		for _, r := range records {
			fmt.Printf("%s  %s  %s  %s  %s\n",
				r.ID, r.Designation, r.Mandarin, r.Sender, r.CreatedAt.Format("2006-01-02"))
		}

	case *deleteFlag != "":
		ok, err := app.DeleteRecord(*deleteFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "删除失败: %v\n", err)
			return 1
		}
		if !ok {
			fmt.Fprintf(os.Stderr, "记录不存在: %s\n", *deleteFlag)
			return 1
		}
		fmt.Println("已删除")

	case *printFlag != "":
		path, err := app.PrintRecord(*printFlag, *offsetXFlag, *offsetYFlag, *openFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "套印失败: %v\n", err)
			return 1
		}
		fmt.Printf("已生成: %s\n", path)

	case *importFlag != "":
		count, err := app.ImportExcel(*importFlag, *lunarYearFlag, *lunarMonthFlag, *lunarDayFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "导入失败: %v\n", err)
			return 1
		}
		fmt.Printf("已导入 %d 条记录\n", count)

	case *calibrateFlag:
		path, err := app.PrintCalibration(*openFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "校准网格生成失败: %v\n", err)
			return 1
		}
		fmt.Printf("已生成: %s\n", path)

	case *previewFlag != "":
		path, err := app.PreviewPNG(*previewFlag, *offsetXFlag, *offsetYFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "预览生成失败: %v\n", err)
			return 1
		}
		fmt.Printf("已生成: %s\n", path)

	default:
		printHelp()
	}
	return 0
}

func main() {
	flag.Usage = printHelp
	flag.Parse()

	logConfig := logger.DefaultConfig()
	if err := logger.Init(logConfig); err != nil {
		fmt.Fprintf(os.Stderr, "日志初始化失败: %v\n", err)
	}

	app, err := NewAppWithConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		logger.Close()
		os.Exit(1)
	}

	code := run(app)
	app.Close()
	logger.Close()
	os.Exit(code)
}
