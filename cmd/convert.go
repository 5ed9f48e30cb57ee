package cmd

import (
	"fmt"
	"os"

	"github.com/beevik/etree"
	"github.com/spf13/cobra"

	"github.com/instancekit/instancekit/config"
	"github.com/instancekit/instancekit/core/descriptor"
)

var convertTo string

var convertCmd = &cobra.Command{
	Use:   "convert <in> <out>",
	Short: "Convert a descriptor file between the binary and XML codecs",
	Args:  cobra.ExactArgs(2),
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertTo, "to", "xml", "target format: xml or binary")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	switch convertTo {
	case "xml":
		return binaryToXML(args[0], args[1])
	case "binary":
		return xmlToBinary(cfg, args[0], args[1])
	default:
		return fmt.Errorf("unknown target format: %s", convertTo)
	}
}

func binaryToXML(in, out string) error {
	f, err := os.Open(in)
	if err != nil {
		return err
	}
	defer f.Close()

	var d descriptor.InstanceDescriptor
	if err := d.DecodeBinary(f); err != nil {
		return fmt.Errorf("decode %s: %w", in, err)
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	e := doc.CreateElement("Object")
	if err := d.EncodeXML(e); err != nil {
		return err
	}
	doc.Indent(2)
	return doc.WriteToFile(out)
}

func xmlToBinary(cfg *config.Config, in, out string) error {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(in); err != nil {
		return fmt.Errorf("read %s: %w", in, err)
	}
	root := doc.Root()
	if root == nil {
		return fmt.Errorf("read %s: no root element", in)
	}

	var d descriptor.InstanceDescriptor
	if err := d.DecodeXMLWithDefault(root, cfg.XML.DefaultFactoryTag); err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := d.EncodeBinary(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
